package types

// Action is the decision produced for one project directory: do
// nothing, write the candidate descriptor, or report the diff without
// touching the filesystem.
type Action struct {
	Kind ActionKind

	// Candidate is the descriptor to serialize when Kind is
	// ActionWrite.
	Candidate Environment

	// Diff is populated for ActionWrite and ActionReport.
	Diff DiffResult
}
