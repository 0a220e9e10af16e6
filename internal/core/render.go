package core

import (
	"bytes"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pixi-envsync/internal/types"
)

// Render serializes a descriptor deterministically: name first, then
// channels in preserved order, then dependencies in source order with
// the pip block as the final entry, then prefix. Rendering the decoded
// and re-normalized output of Render reproduces identical bytes, which
// is what makes repeated sync runs converge after one write.
func Render(env types.Environment) ([]byte, error) {
	doc := document{
		Name:     env.Name,
		Channels: env.Channels,
		Prefix:   env.Prefix,
	}
	doc.Dependencies = make([]any, 0, len(env.Dependencies)+1)
	for _, spec := range env.Dependencies {
		doc.Dependencies = append(doc.Dependencies, SpecString(spec))
	}
	if env.HasPip() && len(env.Pip) > 0 {
		entries := make([]string, 0, len(env.Pip))
		for _, spec := range env.Pip {
			entries = append(entries, SpecString(spec))
		}
		doc.Dependencies = append(doc.Dependencies, map[string][]string{"pip": entries})
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render environment descriptor").
			WithCause(err)
	}
	if err := encoder.Close(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to finalize environment descriptor").
			WithCause(err)
	}
	return buf.Bytes(), nil
}
