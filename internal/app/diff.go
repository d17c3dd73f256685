package app

import (
	"context"
	"fmt"

	"github.com/Daisey666/envfile/internal/core/domain"
	"github.com/Daisey666/envfile/internal/ui/style"
)

// DiffOptions configuration for the Diff method.
type DiffOptions struct {
	JSON bool
}

// Diff compares two manifests and reports per-group added, removed, and
// modified dependencies plus channel priority changes. Dependency list
// order is ignored; channel order is significant. Returns
// ErrManifestsDiffer when the manifests are not equivalent.
func (a *App) Diff(_ context.Context, oldPath, newPath string, opts DiffOptions) error {
	oldManifest, err := a.loader.Load(oldPath)
	if err != nil {
		return err
	}
	newManifest, err := a.loader.Load(newPath)
	if err != nil {
		return err
	}

	changes := oldManifest.DiffAgainst(newManifest)
	channelsChanged := !oldManifest.ChannelsEqual(newManifest)

	if opts.JSON {
		report := struct {
			ChannelsChanged bool           `json:"channels_changed"`
			Changes         []ChangeReport `json:"changes"`
		}{
			ChannelsChanged: channelsChanged,
			Changes:         newChangeReports(changes),
		}
		if err := writeJSON(a.out, report); err != nil {
			return err
		}
	} else {
		a.printDiff(changes, channelsChanged, oldManifest, newManifest)
	}

	if len(changes) > 0 || channelsChanged {
		return domain.ErrManifestsDiffer
	}
	return nil
}

func (a *App) printDiff(changes []domain.Change, channelsChanged bool, oldManifest, newManifest *domain.Manifest) {
	if channelsChanged {
		fmt.Fprintf(a.out, "%s channels: %s %s %s\n",
			style.WarningText.Render(style.Tilde),
			renderChannels(oldManifest.Channels),
			style.MutedText.Render("->"),
			renderChannels(newManifest.Channels),
		)
	}

	for _, c := range changes {
		switch c.Kind {
		case domain.ChangeAdded:
			fmt.Fprintf(a.out, "%s %s/%s %s\n",
				style.SuccessText.Render(style.Plus), c.Group, c.Name, c.To)
		case domain.ChangeRemoved:
			fmt.Fprintf(a.out, "%s %s/%s %s\n",
				style.ErrorText.Render(style.Minus), c.Group, c.Name, c.From)
		case domain.ChangeModified:
			fmt.Fprintf(a.out, "%s %s/%s %s %s %s\n",
				style.WarningText.Render(style.Tilde), c.Group, c.Name,
				c.From, style.MutedText.Render("->"), c.To)
		}
	}

	if len(changes) == 0 && !channelsChanged {
		fmt.Fprintf(a.out, "%s manifests are equivalent\n", style.SuccessText.Render(style.Check))
	}
}

func renderChannels(channels []domain.Channel) string {
	s := ""
	for i, c := range channels {
		if i > 0 {
			s += ","
		}
		s += string(c)
	}
	return s
}
