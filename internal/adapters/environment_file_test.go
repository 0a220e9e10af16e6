package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentFileLoadAbsent(t *testing.T) {
	data, ok, err := NewEnvironmentFileAdapter().Load(t.TempDir(), "environment.yml")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestEnvironmentFileSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	adapter := NewEnvironmentFileAdapter()
	content := []byte("name: demo\ndependencies:\n  - numpy\n")

	require.NoError(t, adapter.Save(dir, "environment.yml", content))

	data, ok, err := adapter.Load(dir, "environment.yml")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, content, data)

	info, err := os.Stat(filepath.Join(dir, "environment.yml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestEnvironmentFileSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	adapter := NewEnvironmentFileAdapter()

	require.NoError(t, adapter.Save(dir, "environment.yml", []byte("old")))
	require.NoError(t, adapter.Save(dir, "environment.yml", []byte("new")))

	data, ok, err := adapter.Load(dir, "environment.yml")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", string(data))
}
