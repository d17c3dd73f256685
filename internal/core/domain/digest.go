package domain

import (
	"fmt"
	"io"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a 16-hex-character fingerprint of the manifest.
//
// The digest is computed over the canonical form: dependency entries
// contribute in normalized-name order regardless of how the file lists
// them, while channels contribute in declared order. Two manifests with
// the same dependency set and the same channel priority therefore share
// a digest even if their dependency lists are shuffled.
func (m *Manifest) Digest() string {
	d := xxhash.New()

	_, _ = io.WriteString(d, "name\x00"+m.Name+"\x00")
	for _, c := range m.Channels {
		_, _ = io.WriteString(d, "channel\x00"+string(c)+"\x00")
	}
	for _, spec := range sortedSpecs(m.Dependencies, GroupConda) {
		_, _ = io.WriteString(d, "conda\x00"+spec+"\x00")
	}
	for _, spec := range sortedSpecs(m.Pip, GroupPip) {
		_, _ = io.WriteString(d, "pip\x00"+spec+"\x00")
	}

	return fmt.Sprintf("%016x", d.Sum64())
}

func sortedSpecs(deps []Dependency, group Group) []string {
	specs := make([]string, 0, len(deps))
	for _, dep := range canonicalizeGroup(deps, group) {
		specs = append(specs, dep.Spec())
	}
	slices.Sort(specs)
	return specs
}
