package domain

// Lock is the persisted snapshot of a manifest's canonical content.
// It records the digest and the fully-enumerated entries so drift can be
// reported per dependency, not just as a digest mismatch.
type Lock struct {
	Name     string      `json:"name"`
	Digest   string      `json:"digest"`
	Channels []string    `json:"channels"`
	Conda    []LockEntry `json:"conda"`
	Pip      []LockEntry `json:"pip,omitempty"`
}

// LockEntry is a single locked dependency.
type LockEntry struct {
	Name string `json:"name"`
	Spec string `json:"spec"`
}

// NewLock builds the lock record for a manifest.
func NewLock(m *Manifest) Lock {
	channels := make([]string, len(m.Channels))
	for i, c := range m.Channels {
		channels[i] = string(c)
	}

	return Lock{
		Name:     m.Name,
		Digest:   m.Digest(),
		Channels: channels,
		Conda:    lockEntries(m.Dependencies, GroupConda),
		Pip:      lockEntries(m.Pip, GroupPip),
	}
}

func lockEntries(deps []Dependency, group Group) []LockEntry {
	canonical := canonicalizeGroup(deps, group)
	entries := make([]LockEntry, len(canonical))
	for i, dep := range canonical {
		entries[i] = LockEntry{Name: dep.Name, Spec: dep.Spec()}
	}
	return entries
}
