package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pixi-envsync/internal/core"
	"pixi-envsync/internal/types"
)

// Sync processes every project directory named by the request inputs:
// it builds the export-side descriptor, compares it against the on-disk
// environment file, and applies the resulting action. Directories are
// processed independently; a failure in one does not stop the others.
func (s Service) Sync(ctx context.Context, req SyncRequest) (SyncResult, error) {
	if err := core.ValidateOptions(req.Options); err != nil {
		return SyncResult{}, err
	}
	if len(req.Inputs) == 0 {
		return SyncResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one input file is required")
	}

	dirs, err := s.Workspace.ProjectDirs(req.Inputs)
	if err != nil {
		return SyncResult{}, err
	}
	if len(dirs) == 0 {
		return SyncResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no valid project directories found")
	}

	if _, err := s.Exporter.Version(ctx); err != nil {
		return SyncResult{}, err
	}

	result := SyncResult{}
	for _, dir := range dirs {
		action, err := s.syncDir(ctx, dir, req.Options)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("dir", dir).Msg("failed to process project directory")
		}
		result.Results = append(result.Results, DirResult{Dir: dir, Action: action, Err: err})
	}
	return result, nil
}

func (s Service) syncDir(ctx context.Context, dir string, opts types.Options) (types.Action, error) {
	logger := log.Ctx(ctx).With().Str("dir", dir).Logger()

	manifestPath, err := s.Workspace.ManifestPath(dir)
	if err != nil {
		return types.Action{}, err
	}

	rawExport, err := s.exportEnvironment(ctx, manifestPath, opts)
	if err != nil {
		return types.Action{}, err
	}
	candidate, err := core.Normalize(ctx, rawExport, opts)
	if err != nil {
		return types.Action{}, err
	}

	current, present, err := s.loadCurrent(ctx, dir, opts)
	if err != nil {
		return types.Action{}, err
	}
	if !present {
		logger.Info().Str("file", opts.EnvironmentFile).Msg("environment file not found")
	}

	diff := core.Compare(current, candidate)
	action := core.Decide(ctx, diff, candidate, opts.Mode)

	switch action.Kind {
	case types.ActionNoOp:
		logger.Info().Str("file", opts.EnvironmentFile).Msg("environment file already in sync")
	case types.ActionReport:
		logger.Warn().
			Str("file", opts.EnvironmentFile).
			Int("differences", diff.Count()).
			Msg("environment file is out of sync with pixi manifest")
	case types.ActionWrite:
		data, err := core.Render(action.Candidate)
		if err != nil {
			return types.Action{}, err
		}
		if err := s.EnvFile.Save(dir, opts.EnvironmentFile, data); err != nil {
			return types.Action{}, err
		}
		logger.Info().Str("file", opts.EnvironmentFile).Msg("environment file updated")
	}
	return action, nil
}

// exportEnvironment builds the export-side raw descriptor. The plain
// export command carries neither build strings nor the explicit-only
// package set, so those options route through `pixi list` instead.
func (s Service) exportEnvironment(ctx context.Context, manifestPath string, opts types.Options) (types.Environment, error) {
	if opts.Explicit || opts.IncludeBuild {
		packages, err := s.Exporter.ListPackages(ctx, manifestPath, opts.Environment, opts.Explicit)
		if err != nil {
			return types.Environment{}, err
		}
		return core.FromPackages(ctx, packages, opts)
	}
	data, err := s.Exporter.ExportCondaEnvironment(ctx, manifestPath, opts.Environment, opts.Name)
	if err != nil {
		return types.Environment{}, err
	}
	return core.Decode(data)
}

// loadCurrent reads and normalizes the on-disk descriptor. An absent or
// empty file is reported as not present and compared as the empty
// descriptor, without the option overrides applied: overriding the name
// on an absent side would mask the difference that makes the first run
// write the file.
func (s Service) loadCurrent(ctx context.Context, dir string, opts types.Options) (types.Environment, bool, error) {
	data, ok, err := s.EnvFile.Load(dir, opts.EnvironmentFile)
	if err != nil {
		return types.Environment{}, false, err
	}
	if !ok || strings.TrimSpace(string(data)) == "" {
		return types.Environment{}, false, nil
	}
	raw, err := core.Decode(data)
	if err != nil {
		return types.Environment{}, false, err
	}
	current, err := core.Normalize(ctx, raw, opts)
	if err != nil {
		return types.Environment{}, false, err
	}
	return current, true, nil
}
