package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pixi-envsync/internal/types"
)

// opTokens is the ordered list of constraint operators tried during
// parsing. Longer tokens must precede shorter ones to avoid false
// matches (e.g. ">=" before ">").
var opTokens = []types.ConstraintOp{
	types.ConstraintOpGte,
	types.ConstraintOpLte,
	types.ConstraintOpCompat,
	types.ConstraintOpNe,
	types.ConstraintOpEq2,
	types.ConstraintOpEq,
	types.ConstraintOpGt,
	types.ConstraintOpLt,
}

// ParsePackageSpec decomposes a raw descriptor dependency entry into a
// PackageSpec. Accepted shapes:
//
//	numpy
//	numpy *
//	numpy=1.24.0
//	numpy=1.24.0=py310h1234567_0
//	python >=3.10,<3.12
//	requests==2.31.0
//
// The version constraint is stored with its operator and without
// internal spaces. A lone "*" constraint is kept verbatim; normalization
// collapses it to the canonical empty form.
func ParsePackageSpec(raw string) (types.PackageSpec, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return types.PackageSpec{}, malformedSpec(raw, "empty dependency entry")
	}

	name, constraint := splitNameConstraint(trimmed)
	if name == "" {
		return types.PackageSpec{}, malformedSpec(raw, "missing package name")
	}
	if strings.ContainsAny(name, " \t") {
		return types.PackageSpec{}, malformedSpec(raw, "package name contains whitespace")
	}
	if constraint == "" {
		return types.PackageSpec{Name: name}, nil
	}
	if constraint == "*" {
		return types.PackageSpec{Name: name, Version: "*"}, nil
	}

	op := leadingOp(constraint)
	if op == types.ConstraintOpNone {
		return types.PackageSpec{}, malformedSpec(raw, "version constraint has no operator")
	}
	value := constraint[len(op):]
	if value == "" {
		return types.PackageSpec{}, malformedSpec(raw, "version constraint has no version")
	}

	// The single-equals pin form may carry a build string as a third
	// "=" separated field: name=version=build.
	if op == types.ConstraintOpEq {
		if version, build, found := strings.Cut(value, "="); found {
			if version == "" || build == "" {
				return types.PackageSpec{}, malformedSpec(raw, "empty version or build in pinned entry")
			}
			return types.PackageSpec{
				Name:    name,
				Version: string(types.ConstraintOpEq) + version,
				Build:   build,
			}, nil
		}
	}
	return types.PackageSpec{Name: name, Version: constraint}, nil
}

// SpecString renders a PackageSpec back to its descriptor entry form.
// The inverse of ParsePackageSpec for parsed input.
func SpecString(spec types.PackageSpec) string {
	var builder strings.Builder
	builder.WriteString(spec.Name)
	if spec.Version != "" {
		if spec.Version == "*" {
			builder.WriteString(" *")
		} else {
			builder.WriteString(spec.Version)
		}
	}
	if spec.Build != "" {
		builder.WriteString("=")
		builder.WriteString(spec.Build)
	}
	return builder.String()
}

// splitNameConstraint separates the package name from the constraint
// part, tolerating optional whitespace between them ("python >=3.10"
// and "python>=3.10" are equivalent).
func splitNameConstraint(entry string) (string, string) {
	if index := strings.IndexAny(entry, "<>=!~"); index >= 0 {
		name := strings.TrimSpace(entry[:index])
		constraint := removeSpaces(entry[index:])
		return name, constraint
	}
	if name, rest, found := strings.Cut(entry, " "); found {
		return strings.TrimSpace(name), removeSpaces(rest)
	}
	return entry, ""
}

func leadingOp(constraint string) types.ConstraintOp {
	for _, op := range opTokens {
		if strings.HasPrefix(constraint, string(op)) {
			return op
		}
	}
	return types.ConstraintOpNone
}

func removeSpaces(value string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, value)
}

func malformedSpec(raw string, reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("malformed dependency entry %q: %s", raw, reason))
}
