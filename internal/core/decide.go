package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"pixi-envsync/internal/types"
)

// Decide maps a comparison result onto the action for this run. An
// empty diff is always a no-op. In check mode a non-empty diff becomes
// a report and never touches the filesystem; in sync mode the
// normalized export candidate is written wholesale, with no
// field-by-field merge of dependency values.
func Decide(ctx context.Context, diff types.DiffResult, candidate types.Environment, mode types.Mode) types.Action {
	assert.NotEmpty(ctx, string(mode), "mode must be set before deciding")

	if diff.Empty() {
		log.Ctx(ctx).Debug().Msg("descriptors are equivalent, no action")
		return types.Action{Kind: types.ActionNoOp}
	}
	if mode == types.ModeCheck {
		log.Ctx(ctx).Debug().Int("differences", diff.Count()).Msg("check mode, reporting diff")
		return types.Action{Kind: types.ActionReport, Diff: diff}
	}
	log.Ctx(ctx).Debug().Int("differences", diff.Count()).Msg("sync mode, writing candidate")
	return types.Action{Kind: types.ActionWrite, Candidate: candidate, Diff: diff}
}
