package ports

import (
	"context"

	"pixi-envsync/internal/types"
)

// ExporterPort is the contract with the pixi binary. The core never
// depends on process-spawning details; tests substitute canned output.
type ExporterPort interface {
	// Version reports the installed pixi version, failing when the
	// binary is missing or broken.
	Version(ctx context.Context) (string, error)

	// ExportCondaEnvironment runs `pixi workspace export
	// conda-environment` for the given manifest and environment and
	// returns the raw descriptor text. name, when non-empty, is passed
	// through as the exported environment name.
	ExportCondaEnvironment(ctx context.Context, manifestPath string, environment string, name string) ([]byte, error)

	// ListPackages runs `pixi list --json` for the given manifest and
	// environment. With explicit set, only explicitly requested
	// packages are listed.
	ListPackages(ctx context.Context, manifestPath string, environment string, explicit bool) ([]types.PackageInfo, error)
}
