package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pixi-envsync/internal/ports"
)

// EnvironmentFileAdapter reads and replaces the environment descriptor
// on disk.
type EnvironmentFileAdapter struct{}

func NewEnvironmentFileAdapter() EnvironmentFileAdapter {
	return EnvironmentFileAdapter{}
}

// Load returns ok=false without an error when the file does not exist;
// absence is an expected state, not a failure.
func (a EnvironmentFileAdapter) Load(dir string, filename string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read environment file").
			WithCause(err)
	}
	return data, true, nil
}

func (a EnvironmentFileAdapter) Save(dir string, filename string, data []byte) error {
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write environment file").
			WithCause(err)
	}
	return nil
}

var _ ports.EnvironmentFilePort = EnvironmentFileAdapter{}
