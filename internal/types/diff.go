package types

// FieldChange records a scalar field that differs between the current
// descriptor and the export candidate.
type FieldChange struct {
	Old string
	New string
}

// PackageUpdate records a package present on both sides by name but
// differing in version constraint or build string.
type PackageUpdate struct {
	Name string
	Old  PackageSpec
	New  PackageSpec
}

// SectionDiff is the structural difference of one dependency section.
// Removed entries exist only in the current descriptor, Added only in
// the candidate.
type SectionDiff struct {
	Added   []PackageSpec
	Removed []PackageSpec
	Updated []PackageUpdate
}

func (d SectionDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Updated) == 0
}

func (d SectionDiff) Count() int {
	return len(d.Added) + len(d.Removed) + len(d.Updated)
}

// DiffResult is the full structural diff between two normalized
// descriptors. NameChange and ChannelsChange are nil when the
// respective field is equal.
type DiffResult struct {
	NameChange     *FieldChange
	ChannelsChange *ChannelsDiff
	Dependencies   SectionDiff
	Pip            SectionDiff
}

// ChannelsDiff records a channel list difference. Channel order is
// significant, so the whole sequence is reported rather than a set
// delta.
type ChannelsDiff struct {
	Old []string
	New []string
}

func (d DiffResult) Empty() bool {
	return d.NameChange == nil && d.ChannelsChange == nil &&
		d.Dependencies.Empty() && d.Pip.Empty()
}

// Count returns the total number of reported differences, with a name
// or channel change each counting as one.
func (d DiffResult) Count() int {
	count := d.Dependencies.Count() + d.Pip.Count()
	if d.NameChange != nil {
		count++
	}
	if d.ChannelsChange != nil {
		count++
	}
	return count
}
