package domain

import (
	"slices"
	"strings"
)

// Channel is a named package source. Channel order is resolution
// priority and must survive round-trips exactly.
type Channel string

// Group identifies the installer responsible for a dependency entry.
type Group string

const (
	// GroupConda is the primary, channel-resolved dependency group.
	GroupConda Group = "conda"
	// GroupPip is the secondary installer group nested under the primary list.
	GroupPip Group = "pip"
)

// Dependency is a package requirement: a name with optional version
// constraints, an optional conda build string, and optional pip extras.
type Dependency struct {
	Name        string
	Constraints []Constraint
	Build       string
	Extras      []string
}

// Unconstrained reports whether the entry accepts any version.
func (d Dependency) Unconstrained() bool {
	return len(d.Constraints) == 0
}

// Spec renders the dependency back into installer syntax.
func (d Dependency) Spec() string {
	var b strings.Builder
	b.WriteString(d.Name)
	if len(d.Extras) > 0 {
		b.WriteString("[" + strings.Join(d.Extras, ",") + "]")
	}
	for i, c := range d.Constraints {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(c.String())
	}
	if d.Build != "" {
		b.WriteString("=" + d.Build)
	}
	return b.String()
}

// Equal reports whether two entries are identical requirements.
func (d Dependency) Equal(other Dependency) bool {
	return d.Spec() == other.Spec()
}

// Manifest is the parsed environment definition: an environment name, an
// ordered channel list, the primary dependency group, the nested pip
// group, and free-text operator notes harvested from comments.
type Manifest struct {
	Name         string
	Channels     []Channel
	Dependencies []Dependency
	Pip          []Dependency
	Notes        []string
}

// Entries returns the dependency entries of the given group.
func (m *Manifest) Entries(group Group) []Dependency {
	if group == GroupPip {
		return m.Pip
	}
	return m.Dependencies
}

// Canonicalize sorts each dependency group by normalized name and drops
// exact duplicate entries. Channel order is priority and is left untouched.
func (m *Manifest) Canonicalize() {
	m.Dependencies = canonicalizeGroup(m.Dependencies, GroupConda)
	m.Pip = canonicalizeGroup(m.Pip, GroupPip)
}

func canonicalizeGroup(deps []Dependency, group Group) []Dependency {
	sorted := make([]Dependency, len(deps))
	copy(sorted, deps)
	slices.SortStableFunc(sorted, func(a, b Dependency) int {
		if c := strings.Compare(NormalizeName(a.Name, group), NormalizeName(b.Name, group)); c != 0 {
			return c
		}
		return strings.Compare(a.Spec(), b.Spec())
	})
	return slices.CompactFunc(sorted, Dependency.Equal)
}
