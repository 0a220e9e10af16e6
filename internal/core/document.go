package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pixi-envsync/internal/types"
)

// document is the on-disk YAML shape of an environment descriptor.
// Field order here fixes the serialization order.
type document struct {
	Name         string   `yaml:"name,omitempty"`
	Channels     []string `yaml:"channels,omitempty"`
	Dependencies []any    `yaml:"dependencies"`
	Prefix       string   `yaml:"prefix,omitempty"`
}

// rawDocument is the decode-side counterpart of document; dependency
// entries are kept as nodes because the list mixes plain strings with
// the nested pip mapping.
type rawDocument struct {
	Name         string      `yaml:"name"`
	Channels     []string    `yaml:"channels"`
	Dependencies []yaml.Node `yaml:"dependencies"`
	Prefix       string      `yaml:"prefix"`
}

// Decode parses descriptor text into the data model. Dependency entries
// must be either plain spec strings or a single nested "pip" mapping;
// anything else is a malformed descriptor. Empty input decodes to the
// empty descriptor.
func Decode(data []byte) (types.Environment, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return types.Environment{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("malformed descriptor: not a valid environment document").
			WithCause(err)
	}

	env := types.Environment{
		Name:     raw.Name,
		Prefix:   raw.Prefix,
		Channels: raw.Channels,
	}
	for _, node := range raw.Dependencies {
		switch node.Kind {
		case yaml.ScalarNode:
			var entry string
			if err := node.Decode(&entry); err != nil {
				return types.Environment{}, malformedDocument(err)
			}
			spec, err := ParsePackageSpec(entry)
			if err != nil {
				return types.Environment{}, err
			}
			env.Dependencies = append(env.Dependencies, spec)
		case yaml.MappingNode:
			pip, err := decodePipBlock(node)
			if err != nil {
				return types.Environment{}, err
			}
			if env.Pip != nil {
				return types.Environment{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("malformed descriptor: multiple pip blocks")
			}
			env.Pip = pip
		default:
			return types.Environment{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("malformed descriptor: unexpected dependency entry on line %d", node.Line))
		}
	}
	return env, nil
}

// decodePipBlock decodes the single-key {pip: [...]} mapping nested in
// the dependency list.
func decodePipBlock(node yaml.Node) ([]types.PackageSpec, error) {
	var block map[string][]string
	if err := node.Decode(&block); err != nil {
		return nil, malformedDocument(err)
	}
	entries, found := block["pip"]
	if !found || len(block) != 1 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("malformed descriptor: unexpected mapping in dependency list on line %d", node.Line))
	}
	pip := []types.PackageSpec{}
	for _, entry := range entries {
		spec, err := ParsePackageSpec(entry)
		if err != nil {
			return nil, err
		}
		pip = append(pip, spec)
	}
	return pip, nil
}

func malformedDocument(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("malformed descriptor: invalid dependency entry").
		WithCause(err)
}
