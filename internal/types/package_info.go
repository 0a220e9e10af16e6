package types

import "fmt"

// PackageInfo is one record from `pixi list --json`. Field names follow
// the pixi output schema.
type PackageInfo struct {
	Name       string      `json:"name"`
	Version    string      `json:"version"`
	SizeBytes  int64       `json:"size_bytes"`
	Build      string      `json:"build,omitempty"`
	Kind       PackageKind `json:"kind"`
	Source     string      `json:"source"`
	IsExplicit bool        `json:"is_explicit"`
	IsEditable *bool       `json:"is_editable,omitempty"`
}

func (p PackageInfo) IsConda() bool {
	return p.Kind == PackageKindConda
}

func (p PackageInfo) IsPyPI() bool {
	return p.Kind == PackageKindPyPI
}

// SpecString renders the installed package as a pinned descriptor entry:
// "name=version" or, when requested and known, "name=version=build".
// PyPI packages never carry a build string.
func (p PackageInfo) SpecString(includeBuild bool) string {
	if includeBuild && p.Build != "" {
		return fmt.Sprintf("%s=%s=%s", p.Name, p.Version, p.Build)
	}
	return fmt.Sprintf("%s=%s", p.Name, p.Version)
}
