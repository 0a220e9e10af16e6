package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"pixi-envsync/internal/types"
)

func TestDecideEmptyDiffIsNoOpInBothModes(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeSync, types.ModeCheck} {
		action := Decide(context.Background(), types.DiffResult{}, types.Environment{}, mode)
		assert.Equal(t, types.ActionNoOp, action.Kind, "mode: %s", mode)
	}
}

func TestDecideCheckModeReports(t *testing.T) {
	diff := types.DiffResult{
		Dependencies: types.SectionDiff{
			Added: []types.PackageSpec{{Name: "scipy"}},
		},
	}
	action := Decide(context.Background(), diff, types.Environment{}, types.ModeCheck)
	assert.Equal(t, types.ActionReport, action.Kind)
	assert.Equal(t, 1, action.Diff.Count())
}

func TestDecideSyncModeWritesCandidateWholesale(t *testing.T) {
	candidate := types.Environment{
		Name:         "demo",
		Dependencies: []types.PackageSpec{{Name: "scipy", Version: "=1.11.0"}},
	}
	diff := types.DiffResult{
		Dependencies: types.SectionDiff{
			Added: []types.PackageSpec{{Name: "scipy", Version: "=1.11.0"}},
		},
	}
	action := Decide(context.Background(), diff, candidate, types.ModeSync)
	assert.Equal(t, types.ActionWrite, action.Kind)
	// The candidate is written as-is: no field-by-field merge.
	assert.Equal(t, candidate, action.Candidate)
}
