package app

import "pixi-envsync/internal/types"

type SyncRequest struct {
	// Inputs are the config files given on the command line
	// (pixi.toml, pyproject.toml, or pixi.lock paths).
	Inputs  []string
	Options types.Options
}

// DirResult is the outcome for one project directory. Err is set when
// the directory could not be processed at all; Action is valid
// otherwise.
type DirResult struct {
	Dir    string
	Action types.Action
	Err    error
}

// InSync reports whether the directory needed no change.
func (r DirResult) InSync() bool {
	return r.Err == nil && r.Action.Kind == types.ActionNoOp
}

type SyncResult struct {
	Results []DirResult
}

// OutOfSync counts directories whose descriptor differed from the
// export (reported or written).
func (r SyncResult) OutOfSync() int {
	count := 0
	for _, result := range r.Results {
		if result.Err == nil && result.Action.Kind != types.ActionNoOp {
			count++
		}
	}
	return count
}

// Failed counts directories that errored before a decision was made.
func (r SyncResult) Failed() int {
	count := 0
	for _, result := range r.Results {
		if result.Err != nil {
			count++
		}
	}
	return count
}
