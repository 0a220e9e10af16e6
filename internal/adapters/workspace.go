package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pixi-envsync/internal/ports"
)

// manifestFilenames are the pixi manifests in precedence order.
var manifestFilenames = []string{"pixi.toml", "pyproject.toml"}

// configFilenames are all input files accepted on the command line for
// locating a project directory.
var configFilenames = []string{"pixi.toml", "pyproject.toml", "pixi.lock"}

// WorkspaceAdapter maps input files to project directories and locates
// the pixi manifest within them.
type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

func (a WorkspaceAdapter) ProjectDirs(inputs []string) ([]string, error) {
	var dirs []string
	seen := map[string]struct{}{}
	for _, input := range inputs {
		base := filepath.Base(input)
		if !isConfigFilename(base) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("expected filename to be one of %s, got %q",
					strings.Join(configFilenames, "/"), base))
		}
		dir := filepath.Dir(input)
		if _, duplicate := seen[dir]; duplicate {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// ManifestPath prefers pixi.toml over pyproject.toml. Directories that
// happen to carry a manifest name are ignored.
func (a WorkspaceAdapter) ManifestPath(dir string) (string, error) {
	for _, filename := range manifestFilenames {
		path := filepath.Join(dir, filename)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("could not find manifest path in %s (looked for %s)",
			dir, strings.Join(manifestFilenames, ", ")))
}

func isConfigFilename(name string) bool {
	for _, candidate := range configFilenames {
		if name == candidate {
			return true
		}
	}
	return false
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
