package domain

import "slices"

// ChangeKind classifies a single diff entry.
type ChangeKind uint8

const (
	// ChangeAdded marks a dependency present only in the new manifest.
	ChangeAdded ChangeKind = iota
	// ChangeRemoved marks a dependency present only in the old manifest.
	ChangeRemoved
	// ChangeModified marks a dependency whose requirement changed.
	ChangeModified
)

// Change describes one difference between two manifests.
type Change struct {
	Kind  ChangeKind
	Group Group
	Name  string
	// From is the old spec (empty for additions).
	From string
	// To is the new spec (empty for removals).
	To string
}

// DiffAgainst compares the receiver (the old manifest) with the updated
// manifest and returns the per-group changes in normalized-name order.
// Dependency list order is not significant; only the requirement sets are.
func (m *Manifest) DiffAgainst(updated *Manifest) []Change {
	changes := diffGroup(m.Dependencies, updated.Dependencies, GroupConda)
	changes = append(changes, diffGroup(m.Pip, updated.Pip, GroupPip)...)
	return changes
}

// ChannelsEqual reports whether both manifests declare the same channels
// in the same priority order.
func (m *Manifest) ChannelsEqual(other *Manifest) bool {
	return slices.Equal(m.Channels, other.Channels)
}

func diffGroup(oldDeps, newDeps []Dependency, group Group) []Change {
	oldByName := specsByName(oldDeps, group)
	newByName := specsByName(newDeps, group)

	names := make([]string, 0, len(oldByName)+len(newByName))
	for name := range oldByName {
		names = append(names, name)
	}
	for name := range newByName {
		if _, ok := oldByName[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	var changes []Change
	for _, name := range names {
		oldSpec, inOld := oldByName[name]
		newSpec, inNew := newByName[name]

		switch {
		case !inOld:
			changes = append(changes, Change{Kind: ChangeAdded, Group: group, Name: name, To: newSpec})
		case !inNew:
			changes = append(changes, Change{Kind: ChangeRemoved, Group: group, Name: name, From: oldSpec})
		case oldSpec != newSpec:
			changes = append(changes, Change{Kind: ChangeModified, Group: group, Name: name, From: oldSpec, To: newSpec})
		}
	}
	return changes
}

func specsByName(deps []Dependency, group Group) map[string]string {
	byName := make(map[string]string, len(deps))
	for _, dep := range canonicalizeGroup(deps, group) {
		key := NormalizeName(dep.Name, group)
		if existing, ok := byName[key]; ok {
			// Conflicting repeats are a validation problem; for diff purposes
			// keep a deterministic joined representation.
			byName[key] = existing + " " + dep.Spec()
			continue
		}
		byName[key] = dep.Spec()
	}
	return byName
}
