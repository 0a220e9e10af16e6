package core

import (
	"pixi-envsync/internal/shared"
	"pixi-envsync/internal/types"
)

// Compare computes the structural diff between two descriptors that
// have both been normalized with the same option set. Channel order is
// significant; dependency and pip sections are compared as sets keyed
// by package name. Prefix is informational and never compared. The diff
// is deterministic: no fuzzy matching of package names.
func Compare(current types.Environment, candidate types.Environment) types.DiffResult {
	diff := types.DiffResult{}

	if current.Name != candidate.Name {
		diff.NameChange = &types.FieldChange{Old: current.Name, New: candidate.Name}
	}
	if !channelsEqual(current.Channels, candidate.Channels) {
		diff.ChannelsChange = &types.ChannelsDiff{Old: current.Channels, New: candidate.Channels}
	}

	diff.Dependencies = compareSection(current.Dependencies, candidate.Dependencies, identityKey)
	diff.Pip = compareSection(current.Pip, candidate.Pip, shared.NormalizePipName)

	return diff
}

func identityKey(name string) string {
	return name
}

// compareSection diffs two dependency lists as sets of
// (name, version, build) tuples. Order differences alone never count
// as a change. Added entries are reported in candidate order, removed
// entries in current order.
func compareSection(current []types.PackageSpec, candidate []types.PackageSpec, key func(string) string) types.SectionDiff {
	diff := types.SectionDiff{}
	currentByName := map[string]types.PackageSpec{}
	for _, spec := range current {
		currentByName[key(spec.Name)] = spec
	}
	candidateNames := map[string]struct{}{}

	for _, spec := range candidate {
		name := key(spec.Name)
		candidateNames[name] = struct{}{}
		existing, found := currentByName[name]
		if !found {
			diff.Added = append(diff.Added, spec)
			continue
		}
		if existing.Version != spec.Version || existing.Build != spec.Build {
			diff.Updated = append(diff.Updated, types.PackageUpdate{
				Name: spec.Name,
				Old:  existing,
				New:  spec,
			})
		}
	}
	for _, spec := range current {
		if _, found := candidateNames[key(spec.Name)]; !found {
			diff.Removed = append(diff.Removed, spec)
		}
	}
	return diff
}

// channelsEqual compares channel sequences element-wise in order. A nil
// list and an empty list are both "no channels".
func channelsEqual(current []string, candidate []string) bool {
	if len(current) != len(candidate) {
		return false
	}
	for i := range current {
		if current[i] != candidate[i] {
			return false
		}
	}
	return true
}
