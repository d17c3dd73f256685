package app

import (
	"context"
	"fmt"

	"github.com/Daisey666/envfile/internal/ui/style"
)

// ShowOptions configuration for the Show method.
type ShowOptions struct {
	JSON bool
}

// Show prints the parsed model of a manifest: environment name, channel
// priority, both dependency groups, harvested operator notes, and the
// canonical digest.
func (a *App) Show(_ context.Context, path string, opts ShowOptions) error {
	resolved, m, err := a.load(path)
	if err != nil {
		return err
	}

	if opts.JSON {
		return writeJSON(a.out, newManifestReport(resolved, m))
	}

	name := m.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(a.out, "%s %s\n", style.HeadingText.Render(name), style.MutedText.Render(resolved))

	fmt.Fprintf(a.out, "\n%s\n", style.HeadingText.Render("channels"))
	for i, c := range m.Channels {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, string(c))
	}

	fmt.Fprintf(a.out, "\n%s\n", style.HeadingText.Render("conda"))
	for _, dep := range m.Dependencies {
		fmt.Fprintf(a.out, "  %s %s\n", style.MutedText.Render(style.Dot), dep.Spec())
	}

	if len(m.Pip) > 0 {
		fmt.Fprintf(a.out, "\n%s\n", style.HeadingText.Render("pip"))
		for _, dep := range m.Pip {
			fmt.Fprintf(a.out, "  %s %s\n", style.MutedText.Render(style.Dot), dep.Spec())
		}
	}

	if len(m.Notes) > 0 {
		fmt.Fprintf(a.out, "\n%s\n", style.HeadingText.Render("manual steps"))
		for _, note := range m.Notes {
			fmt.Fprintf(a.out, "  %s\n", note)
		}
	}

	fmt.Fprintf(a.out, "\n%s %s\n", style.MutedText.Render("digest"), m.Digest())
	return nil
}
