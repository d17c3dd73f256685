package app

import (
	"context"
	"fmt"

	"github.com/Daisey666/envfile/internal/core/domain"
	"github.com/Daisey666/envfile/internal/ui/style"
	"golang.org/x/sync/errgroup"
)

// ValidateOptions configuration for the Validate method.
type ValidateOptions struct {
	JSON bool
}

// validation is the per-file outcome collected before printing.
type validation struct {
	path     string
	findings []domain.Finding
}

// Validate checks the structural invariants of one or more manifests.
// With no paths it validates the nearest manifest above the working
// directory. Multiple files are parsed concurrently; reports are printed
// in argument order. Returns ErrValidationFailed if any manifest has an
// error-level finding.
func (a *App) Validate(ctx context.Context, paths []string, opts ValidateOptions) error {
	if len(paths) == 0 {
		resolved, err := a.resolvePath("")
		if err != nil {
			return err
		}
		paths = []string{resolved}
	}

	results := make([]validation, len(paths))
	g, _ := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			m, err := a.loader.Load(path)
			if err != nil {
				return err
			}
			results[i] = validation{path: path, findings: m.Validate()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	failed := false
	reports := make([]ValidationReport, len(results))
	for i, res := range results {
		valid := !domain.HasErrors(res.findings)
		failed = failed || !valid
		reports[i] = ValidationReport{
			Path:     res.path,
			Valid:    valid,
			Findings: newFindingReports(res.findings),
		}
	}

	if opts.JSON {
		if err := writeJSON(a.out, reports); err != nil {
			return err
		}
	} else {
		a.printValidation(results)
	}

	if failed {
		return domain.ErrValidationFailed
	}
	return nil
}

func (a *App) printValidation(results []validation) {
	for _, res := range results {
		if len(res.findings) == 0 {
			fmt.Fprintf(a.out, "%s %s\n", style.SuccessText.Render(style.Check), res.path)
			continue
		}

		fmt.Fprintf(a.out, "%s\n", style.HeadingText.Render(res.path))
		for _, f := range res.findings {
			printFinding(a.out, f)
		}
	}
}
