package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"pixi-envsync/internal/shared"
	"pixi-envsync/internal/types"
)

// anyVersionForms are constraint spellings that all denote "no
// restriction" and collapse to the canonical empty constraint.
var anyVersionForms = map[string]struct{}{
	"*":   {},
	"=*":  {},
	"==*": {},
}

// ValidateOptions rejects option combinations that cannot be honored.
// Explicit pinning discards build strings, so requesting both is a
// conflict.
func ValidateOptions(opts types.Options) error {
	if opts.Explicit && opts.IncludeBuild {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("option conflict: explicit pins discard build strings, cannot combine with include-build")
	}
	if opts.Mode != types.ModeSync && opts.Mode != types.ModeCheck {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("option conflict: unknown mode %q", opts.Mode))
	}
	return nil
}

// Normalize canonicalizes a raw descriptor under a fixed option set so
// two descriptors become directly comparable. The input is not
// modified; the result is a fresh descriptor. Normalizing an already
// normalized descriptor with the same options is a no-op.
func Normalize(ctx context.Context, env types.Environment, opts types.Options) (types.Environment, error) {
	if err := ValidateOptions(opts); err != nil {
		return types.Environment{}, err
	}

	out := types.Environment{Name: env.Name, Prefix: env.Prefix}
	if opts.Name != "" {
		out.Name = opts.Name
	}
	if opts.Prefix != "" {
		out.Prefix = opts.Prefix
	}

	if opts.IncludeChannels {
		out.Channels = dedupeChannels(env.Channels)
	}

	deps, err := normalizeSection(env.Dependencies, opts, false)
	if err != nil {
		return types.Environment{}, err
	}
	out.Dependencies = deps

	if opts.IncludePip && env.Pip != nil {
		pip, err := normalizeSection(env.Pip, opts, true)
		if err != nil {
			return types.Environment{}, err
		}
		if pip == nil {
			pip = []types.PackageSpec{}
		}
		out.Pip = pip
	}

	log.Ctx(ctx).Debug().
		Int("dependencies", len(out.Dependencies)).
		Int("pip", len(out.Pip)).
		Bool("channels", out.Channels != nil).
		Msg("descriptor normalized")
	return out, nil
}

// normalizeSection canonicalizes one dependency list, preserving entry
// order. Duplicate names within the list violate the set semantics of
// the section and are rejected.
func normalizeSection(specs []types.PackageSpec, opts types.Options, pip bool) ([]types.PackageSpec, error) {
	var out []types.PackageSpec
	seen := map[string]struct{}{}
	for _, spec := range specs {
		key := spec.Name
		if pip {
			key = shared.NormalizePipName(spec.Name)
		}
		if _, duplicate := seen[key]; duplicate {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("malformed descriptor: duplicate dependency %q", spec.Name))
		}
		seen[key] = struct{}{}

		normalized := spec
		if _, any := anyVersionForms[normalized.Version]; any {
			normalized.Version = ""
		}
		if pip {
			if err := validatePipConstraint(normalized); err != nil {
				return nil, err
			}
		}
		if opts.Explicit {
			normalized = explicitPin(normalized)
		}
		if !opts.IncludeBuild || pip {
			normalized.Build = ""
		}
		out = append(out, normalized)
	}
	return out, nil
}

// explicitPin rewrites a constraint to canonical exact-pin form. Only a
// plain "=" or "==" constraint carries an unambiguously extractable
// exact version; anything else (ranges, exclusions, wildcards) is
// rewritten to the unconstrained form rather than a guessed version.
// The transform is lossy and one-directional.
func explicitPin(spec types.PackageSpec) types.PackageSpec {
	out := spec
	out.Build = ""
	if spec.Version == "" {
		return out
	}
	op := leadingOp(spec.Version)
	if op != types.ConstraintOpEq && op != types.ConstraintOpEq2 {
		out.Version = ""
		return out
	}
	value := spec.Version[len(op):]
	if strings.Contains(value, "*") || strings.Contains(value, ",") {
		out.Version = ""
		return out
	}
	out.Version = string(types.ConstraintOpEq) + value
	return out
}

// validatePipConstraint checks a pip entry's constraint against PEP 440
// specifier syntax. The conda-style single "=" pin is accepted as an
// alias for "==".
func validatePipConstraint(spec types.PackageSpec) error {
	if spec.Version == "" || spec.Version == "*" {
		return nil
	}
	constraint := spec.Version
	if strings.HasPrefix(constraint, "=") && !strings.HasPrefix(constraint, "==") {
		constraint = "=" + constraint
	}
	if _, err := pep440.NewSpecifiers(constraint); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("malformed descriptor: invalid pip specifier %q for %s", spec.Version, spec.Name)).
			WithCause(err)
	}
	return nil
}

// dedupeChannels collapses duplicate channel entries keeping the first
// occurrence. Order is preserved, never sorted: it determines package
// resolution priority.
func dedupeChannels(channels []string) []string {
	if channels == nil {
		return nil
	}
	out := make([]string, 0, len(channels))
	seen := map[string]struct{}{}
	for _, channel := range channels {
		if _, duplicate := seen[channel]; duplicate {
			continue
		}
		seen[channel] = struct{}{}
		out = append(out, channel)
	}
	return out
}
