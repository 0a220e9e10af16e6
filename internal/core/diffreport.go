package core

import (
	"fmt"
	"strings"

	"pixi-envsync/internal/types"
)

// FormatDiff renders a DiffResult as a human-readable report, one line
// per difference, grouped by section. The rendering is plain listing,
// not an error trace: an out-of-sync file in check mode is an expected
// signal.
func FormatDiff(diff types.DiffResult) string {
	if diff.Empty() {
		return "descriptors are in sync\n"
	}
	var builder strings.Builder
	if diff.NameChange != nil {
		fmt.Fprintf(&builder, "%s:\n", types.SectionName)
		fmt.Fprintf(&builder, "  changed: %s -> %s\n", displayValue(diff.NameChange.Old), displayValue(diff.NameChange.New))
	}
	if diff.ChannelsChange != nil {
		fmt.Fprintf(&builder, "%s:\n", types.SectionChannels)
		fmt.Fprintf(&builder, "  changed: [%s] -> [%s]\n",
			strings.Join(diff.ChannelsChange.Old, ", "),
			strings.Join(diff.ChannelsChange.New, ", "))
	}
	writeSection(&builder, types.SectionDependencies, diff.Dependencies)
	writeSection(&builder, types.SectionPip, diff.Pip)
	return builder.String()
}

func writeSection(builder *strings.Builder, name types.Section, diff types.SectionDiff) {
	if diff.Empty() {
		return
	}
	fmt.Fprintf(builder, "%s:\n", name)
	for _, spec := range diff.Added {
		fmt.Fprintf(builder, "  added:   %s\n", SpecString(spec))
	}
	for _, spec := range diff.Removed {
		fmt.Fprintf(builder, "  removed: %s\n", SpecString(spec))
	}
	for _, update := range diff.Updated {
		fmt.Fprintf(builder, "  updated: %s -> %s\n", SpecString(update.Old), SpecString(update.New))
	}
}

func displayValue(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}
