package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pixi-envsync/internal/core"
)

// Export renders the normalized export-side descriptor for a single
// project without touching the environment file. Useful for inspecting
// what sync would write.
func (s Service) Export(ctx context.Context, req SyncRequest) ([]byte, error) {
	if err := core.ValidateOptions(req.Options); err != nil {
		return nil, err
	}
	dirs, err := s.Workspace.ProjectDirs(req.Inputs)
	if err != nil {
		return nil, err
	}
	if len(dirs) != 1 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("export takes exactly one project input")
	}
	if _, err := s.Exporter.Version(ctx); err != nil {
		return nil, err
	}
	manifestPath, err := s.Workspace.ManifestPath(dirs[0])
	if err != nil {
		return nil, err
	}
	raw, err := s.exportEnvironment(ctx, manifestPath, req.Options)
	if err != nil {
		return nil, err
	}
	candidate, err := core.Normalize(ctx, raw, req.Options)
	if err != nil {
		return nil, err
	}
	return core.Render(candidate)
}
