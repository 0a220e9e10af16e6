package types

// Options is the closed configuration set for a sync run. Every
// recognized option is enumerated here; there is no unknown-key
// passthrough.
type Options struct {
	// Name overrides the environment name in the descriptor when set.
	Name string

	// Prefix sets the informational prefix path. It is written to the
	// descriptor but never compared.
	Prefix string

	// Environment selects which pixi environment to export ("default",
	// "dev", ...).
	Environment string

	// EnvironmentFile is the descriptor filename relative to the
	// project directory.
	EnvironmentFile string

	// Explicit rewrites version constraints to exact pins, discarding
	// ranges that carry no unambiguous exact version.
	Explicit bool

	// IncludePip keeps the nested pip sub-list in the descriptor.
	IncludePip bool

	// IncludeChannels keeps the channel list in the descriptor.
	IncludeChannels bool

	// IncludeBuild keeps per-package build strings.
	IncludeBuild bool

	// Mode selects sync (write on difference) or check (report only).
	Mode Mode
}

// DefaultOptions returns the option set matching a bare CLI invocation.
func DefaultOptions() Options {
	return Options{
		Environment:     "default",
		EnvironmentFile: "environment.yml",
		IncludeChannels: true,
		Mode:            ModeSync,
	}
}
