// Package domain defines the environment manifest model: channels,
// dependency entries, version constraints, and the operations on them.
package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// ConstraintOp is a version comparison operator.
type ConstraintOp string

const (
	// OpAny matches any version (no constraint).
	OpAny ConstraintOp = ""
	// OpExact requires an exact version match.
	OpExact ConstraintOp = "=="
	// OpNotEqual excludes a single version.
	OpNotEqual ConstraintOp = "!="
	// OpGreaterEqual is an inclusive lower bound.
	OpGreaterEqual ConstraintOp = ">="
	// OpLessEqual is an inclusive upper bound.
	OpLessEqual ConstraintOp = "<="
	// OpGreater is an exclusive lower bound.
	OpGreater ConstraintOp = ">"
	// OpLess is an exclusive upper bound.
	OpLess ConstraintOp = "<"
	// OpPrefix is conda's fuzzy match: 1.18 matches 1.18.*.
	OpPrefix ConstraintOp = "="
	// OpCompatible is pip's compatible-release operator.
	OpCompatible ConstraintOp = "~="
)

// Constraint is a single version comparison within a dependency entry.
type Constraint struct {
	Op      ConstraintOp
	Version string
}

// String renders the constraint in spec syntax.
func (c Constraint) String() string {
	return string(c.Op) + c.Version
}

// Multi-character operators must be matched before their single-character prefixes.
var (
	condaOps = []ConstraintOp{OpExact, OpNotEqual, OpGreaterEqual, OpLessEqual, OpGreater, OpLess, OpPrefix}
	pipOps   = []ConstraintOp{OpExact, OpNotEqual, OpGreaterEqual, OpLessEqual, OpCompatible, OpGreater, OpLess}
)

var (
	condaNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	pipNameRegex   = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	versionRegex   = regexp.MustCompile(`^[0-9*!][0-9A-Za-z_.*+!-]*$`)
	extraRegex     = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	pipNormRegex   = regexp.MustCompile(`[-_.]+`)
)

// opStart is the set of characters that can begin a version operator.
const opStart = "=<>!~"

// ParseCondaSpec parses a primary-group dependency spec such as
// "scikit-learn>=0.22.1", "numpy=1.18=py37_0" or a bare "spacy".
func ParseCondaSpec(spec string) (Dependency, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Dependency{}, ErrEmptyDependencyName
	}

	cut := strings.IndexAny(s, opStart)
	if cut == -1 {
		return newCondaDependency(s, nil, "")
	}

	name := strings.TrimSpace(s[:cut])
	rest := s[cut:]

	// Comma-joined ranges ("numpy>=1.18,<1.20") never carry a build
	// string; that form is reserved for the single-constraint spelling.
	if strings.Contains(rest, ",") {
		var constraints []Constraint
		for part := range strings.SplitSeq(rest, ",") {
			op, version, err := matchOp(strings.TrimSpace(part), condaOps)
			if err != nil {
				return Dependency{}, zerr.With(err, "spec", spec)
			}
			version = strings.TrimSpace(version)
			if err := validateVersion(version); err != nil {
				return Dependency{}, zerr.With(err, "spec", spec)
			}
			constraints = append(constraints, Constraint{Op: op, Version: version})
		}
		return newCondaDependency(name, constraints, "")
	}

	op, rest, err := matchOp(rest, condaOps)
	if err != nil {
		return Dependency{}, zerr.With(err, "spec", spec)
	}

	version := strings.TrimSpace(rest)
	build := ""

	// Conda allows an optional build string after a second separator:
	// name=version=build or name==version=build.
	if idx := strings.Index(version, "="); idx != -1 {
		build = version[idx+1:]
		version = version[:idx]
	}

	if err := validateVersion(version); err != nil {
		return Dependency{}, zerr.With(err, "spec", spec)
	}

	return newCondaDependency(name, []Constraint{{Op: op, Version: version}}, build)
}

// ParsePipSpec parses a secondary-group requirement such as
// "jax==0.1.75", "torch>=1.4,<2.0" or "spacy[lookups]".
func ParsePipSpec(spec string) (Dependency, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Dependency{}, ErrEmptyDependencyName
	}

	cut := strings.IndexAny(s, opStart)
	namePart := s
	rest := ""
	if cut != -1 {
		namePart = strings.TrimSpace(s[:cut])
		rest = s[cut:]
	}

	name, extras, err := splitExtras(namePart)
	if err != nil {
		return Dependency{}, zerr.With(err, "spec", spec)
	}
	if name == "" {
		return Dependency{}, zerr.With(ErrEmptyDependencyName, "spec", spec)
	}
	if !pipNameRegex.MatchString(name) {
		return Dependency{}, zerr.With(ErrInvalidDependencyName, "name", name)
	}

	var constraints []Constraint
	if rest != "" {
		for part := range strings.SplitSeq(rest, ",") {
			op, version, err := matchOp(strings.TrimSpace(part), pipOps)
			if err != nil {
				return Dependency{}, zerr.With(err, "spec", spec)
			}
			version = strings.TrimSpace(version)
			if err := validateVersion(version); err != nil {
				return Dependency{}, zerr.With(err, "spec", spec)
			}
			constraints = append(constraints, Constraint{Op: op, Version: version})
		}
	}

	return Dependency{Name: name, Extras: extras, Constraints: constraints}, nil
}

func newCondaDependency(name string, constraints []Constraint, build string) (Dependency, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Dependency{}, ErrEmptyDependencyName
	}
	if !condaNameRegex.MatchString(name) {
		return Dependency{}, zerr.With(ErrInvalidDependencyName, "name", name)
	}
	if build != "" && !versionRegex.MatchString(build) && !condaNameRegex.MatchString(build) {
		return Dependency{}, zerr.With(ErrInvalidConstraint, "build", build)
	}
	return Dependency{Name: name, Constraints: constraints, Build: build}, nil
}

// matchOp consumes a leading operator from s, longest match first.
func matchOp(s string, ops []ConstraintOp) (ConstraintOp, string, error) {
	for _, op := range ops {
		if strings.HasPrefix(s, string(op)) {
			return op, s[len(op):], nil
		}
	}
	return OpAny, "", zerr.With(ErrInvalidConstraint, "constraint", s)
}

func validateVersion(version string) error {
	if version == "" {
		return zerr.With(ErrInvalidConstraint, "reason", "missing version after operator")
	}
	if !versionRegex.MatchString(version) {
		return zerr.With(ErrInvalidConstraint, "version", version)
	}
	return nil
}

// splitExtras splits "name[a,b]" into the bare name and its extras list.
func splitExtras(s string) (string, []string, error) {
	open := strings.Index(s, "[")
	if open == -1 {
		return s, nil, nil
	}
	if !strings.HasSuffix(s, "]") {
		return "", nil, zerr.With(ErrInvalidDependencyName, "name", s)
	}

	name := s[:open]
	var extras []string
	for extra := range strings.SplitSeq(s[open+1:len(s)-1], ",") {
		extra = strings.TrimSpace(extra)
		if !extraRegex.MatchString(extra) {
			return "", nil, zerr.With(ErrInvalidDependencyName, "extra", extra)
		}
		extras = append(extras, extra)
	}
	return name, extras, nil
}

// NormalizeName returns the canonical form of a package name for
// duplicate detection and diffing. Pip names follow the PEP 503 rules:
// case-insensitive with runs of separators collapsed to a hyphen.
func NormalizeName(name string, group Group) string {
	lower := strings.ToLower(name)
	if group == GroupPip {
		return pipNormRegex.ReplaceAllString(lower, "-")
	}
	return lower
}
