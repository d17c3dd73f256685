package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Daisey666/envfile/internal/core/domain"
	"github.com/Daisey666/envfile/internal/ui/style"
	"go.trai.ch/zerr"
)

// ValidationReport is the machine-readable result for one manifest.
type ValidationReport struct {
	Path     string          `json:"path"`
	Valid    bool            `json:"valid"`
	Findings []FindingReport `json:"findings,omitempty"`
}

// FindingReport is one finding in JSON form.
type FindingReport struct {
	Severity string `json:"severity"`
	Group    string `json:"group,omitempty"`
	Name     string `json:"name,omitempty"`
	Message  string `json:"message"`
}

// ManifestReport is the machine-readable form of a parsed manifest.
type ManifestReport struct {
	Path     string   `json:"path"`
	Name     string   `json:"name,omitempty"`
	Digest   string   `json:"digest"`
	Channels []string `json:"channels"`
	Conda    []string `json:"conda"`
	Pip      []string `json:"pip,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// ChangeReport is one diff entry in JSON form.
type ChangeReport struct {
	Kind  string `json:"kind"`
	Group string `json:"group"`
	Name  string `json:"name"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
}

func newFindingReports(findings []domain.Finding) []FindingReport {
	reports := make([]FindingReport, len(findings))
	for i, f := range findings {
		severity := "warning"
		if f.Severity == domain.SeverityError {
			severity = "error"
		}
		reports[i] = FindingReport{
			Severity: severity,
			Group:    string(f.Group),
			Name:     f.Name,
			Message:  f.Message,
		}
	}
	return reports
}

func newManifestReport(path string, m *domain.Manifest) ManifestReport {
	report := ManifestReport{
		Path:     path,
		Name:     m.Name,
		Digest:   m.Digest(),
		Channels: make([]string, len(m.Channels)),
		Conda:    make([]string, 0, len(m.Dependencies)),
		Pip:      make([]string, 0, len(m.Pip)),
		Notes:    m.Notes,
	}
	for i, c := range m.Channels {
		report.Channels[i] = string(c)
	}
	for _, dep := range m.Dependencies {
		report.Conda = append(report.Conda, dep.Spec())
	}
	for _, dep := range m.Pip {
		report.Pip = append(report.Pip, dep.Spec())
	}
	return report
}

func newChangeReports(changes []domain.Change) []ChangeReport {
	reports := make([]ChangeReport, len(changes))
	for i, c := range changes {
		kind := "modified"
		switch c.Kind {
		case domain.ChangeAdded:
			kind = "added"
		case domain.ChangeRemoved:
			kind = "removed"
		}
		reports[i] = ChangeReport{
			Kind:  kind,
			Group: string(c.Group),
			Name:  c.Name,
			From:  c.From,
			To:    c.To,
		}
	}
	return reports
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode report")
	}
	return nil
}

func printFinding(w io.Writer, f domain.Finding) {
	icon := style.WarningText.Render(style.Warning)
	if f.Severity == domain.SeverityError {
		icon = style.ErrorText.Render(style.Cross)
	}

	location := ""
	if f.Name != "" {
		location = fmt.Sprintf(" %s/%s:", f.Group, f.Name)
	}
	fmt.Fprintf(w, "  %s%s %s\n", icon, location, f.Message)
}
