package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"pixi-envsync/internal/types"
)

// FromPackages builds a raw environment descriptor from installed
// package records (`pixi list --json`). Conda packages become pinned
// dependency entries and their source channels become the channel list
// in first-occurrence order; PyPI packages populate the pip section.
// The result still goes through Normalize like any other raw
// descriptor.
func FromPackages(ctx context.Context, packages []types.PackageInfo, opts types.Options) (types.Environment, error) {
	env := types.Environment{}

	var channels []string
	channelSeen := map[string]struct{}{}
	for _, pkg := range packages {
		if !pkg.IsConda() {
			continue
		}
		spec, err := ParsePackageSpec(pkg.SpecString(opts.IncludeBuild))
		if err != nil {
			return types.Environment{}, err
		}
		env.Dependencies = append(env.Dependencies, spec)
		if pkg.Source == "" {
			continue
		}
		if _, found := channelSeen[pkg.Source]; !found {
			channelSeen[pkg.Source] = struct{}{}
			channels = append(channels, pkg.Source)
		}
	}
	if opts.IncludeChannels {
		env.Channels = channels
	}

	if opts.IncludePip {
		pip := []types.PackageSpec{}
		for _, pkg := range packages {
			if !pkg.IsPyPI() {
				continue
			}
			spec, err := ParsePackageSpec(pkg.SpecString(false))
			if err != nil {
				return types.Environment{}, err
			}
			pip = append(pip, spec)
		}
		env.Pip = pip
	}

	log.Ctx(ctx).Debug().
		Int("conda", len(env.Dependencies)).
		Int("pypi", len(env.Pip)).
		Msg("descriptor built from package list")
	return env, nil
}
