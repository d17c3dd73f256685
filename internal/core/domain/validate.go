package domain

// Severity classifies a validation finding.
type Severity uint8

const (
	// SeverityWarning marks findings that do not fail validation.
	SeverityWarning Severity = iota
	// SeverityError marks findings that fail validation.
	SeverityError
)

// Finding is a single structural problem discovered in a manifest.
type Finding struct {
	Severity Severity
	Group    Group
	Name     string
	Message  string
}

// Validate checks the structural invariants of the manifest: a non-empty
// channel list and, per group, unique dependency names. An exact repeat of
// an entry is a warning; two entries for the same package with different
// requirements are an error.
func (m *Manifest) Validate() []Finding {
	var findings []Finding

	if len(m.Channels) == 0 {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Message:  ErrNoChannels.Error(),
		})
	}

	findings = append(findings, validateGroup(m.Dependencies, GroupConda)...)
	findings = append(findings, validateGroup(m.Pip, GroupPip)...)

	return findings
}

// HasErrors reports whether any finding is error-level.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func validateGroup(deps []Dependency, group Group) []Finding {
	var findings []Finding
	seen := make(map[string]Dependency, len(deps))

	for _, dep := range deps {
		key := NormalizeName(dep.Name, group)
		prev, ok := seen[key]
		if !ok {
			seen[key] = dep
			continue
		}

		if prev.Equal(dep) {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Group:    group,
				Name:     dep.Name,
				Message:  "duplicate entry " + dep.Spec(),
			})
			continue
		}

		findings = append(findings, Finding{
			Severity: SeverityError,
			Group:    group,
			Name:     dep.Name,
			Message:  ErrConflictingConstraints.Error() + ": " + prev.Spec() + " vs " + dep.Spec(),
		})
	}

	return findings
}
