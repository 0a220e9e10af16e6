package types

type PackageKind string

const (
	PackageKindConda PackageKind = "conda"
	PackageKindPyPI  PackageKind = "pypi"
)

type Mode string

const (
	ModeSync  Mode = "sync"
	ModeCheck Mode = "check"
)

type ActionKind string

const (
	ActionNoOp   ActionKind = "noop"
	ActionWrite  ActionKind = "write"
	ActionReport ActionKind = "report"
)

type Section string

const (
	SectionName         Section = "name"
	SectionChannels     Section = "channels"
	SectionDependencies Section = "dependencies"
	SectionPip          Section = "pip"
)

type ConstraintOp string

const (
	ConstraintOpNone   ConstraintOp = ""
	ConstraintOpEq     ConstraintOp = "="
	ConstraintOpEq2    ConstraintOp = "=="
	ConstraintOpNe     ConstraintOp = "!="
	ConstraintOpCompat ConstraintOp = "~="
	ConstraintOpGte    ConstraintOp = ">="
	ConstraintOpLte    ConstraintOp = "<="
	ConstraintOpGt     ConstraintOp = ">"
	ConstraintOpLt     ConstraintOp = "<"
)
