package types

// PackageSpec is a single dependency entry in a conda-style environment
// descriptor. Name is the comparison key and is case-sensitive. Version
// is an optional constraint string ("=1.24.0", ">=3.10,<3.12", or empty
// meaning any version). Build is only carried when build-info inclusion
// is enabled.
type PackageSpec struct {
	Name    string
	Version string
	Build   string
}

// Environment is the in-memory form of a conda-style environment
// descriptor (environment.yml).
//
// Channels are ordered and the order is significant: it determines
// package resolution priority and is preserved verbatim through
// normalization and serialization.
//
// Dependencies are semantically a set keyed by package name even though
// the on-disk format is a list; two entries with the same name are a
// descriptor violation.
//
// Pip holds the nested pip sub-list. A nil slice means the section is
// absent from the descriptor; this is distinct from an empty section and
// keeps descriptors that never had pip packages from producing spurious
// diffs.
type Environment struct {
	Name         string
	Prefix       string
	Channels     []string
	Dependencies []PackageSpec
	Pip          []PackageSpec
}

// HasPip reports whether the pip section is present at all.
func (e Environment) HasPip() bool {
	return e.Pip != nil
}

// Empty reports whether the descriptor carries no content. An absent
// environment file is treated as an empty descriptor for comparison.
func (e Environment) Empty() bool {
	return e.Name == "" && e.Prefix == "" &&
		len(e.Channels) == 0 && len(e.Dependencies) == 0 && e.Pip == nil
}
