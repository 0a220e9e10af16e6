package core

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixi-envsync/internal/types"
)

func samplePackages() []types.PackageInfo {
	return []types.PackageInfo{
		{
			Name:       "python",
			Version:    "3.10.0",
			SizeBytes:  12345678,
			Build:      "h1234567_0",
			Kind:       types.PackageKindConda,
			Source:     "conda-forge",
			IsExplicit: true,
		},
		{
			Name:       "pyyaml",
			Version:    "6.0.1",
			SizeBytes:  234567,
			Build:      "py310h9876543_0",
			Kind:       types.PackageKindConda,
			Source:     "conda-forge",
			IsExplicit: true,
		},
		{
			Name:       "libmamba",
			Version:    "1.5.0",
			SizeBytes:  56789,
			Build:      "h0987654_5",
			Kind:       types.PackageKindConda,
			Source:     "bioconda",
			IsExplicit: false,
		},
		{
			Name:       "requests",
			Version:    "2.31.0",
			SizeBytes:  123456,
			Kind:       types.PackageKindPyPI,
			Source:     "https://pypi.org/simple",
			IsExplicit: true,
		},
	}
}

func TestFromPackagesCondaDependencies(t *testing.T) {
	env, err := FromPackages(context.Background(), samplePackages(), defaultOptions())
	require.NoError(t, err)

	want := []types.PackageSpec{
		{Name: "python", Version: "=3.10.0"},
		{Name: "pyyaml", Version: "=6.0.1"},
		{Name: "libmamba", Version: "=1.5.0"},
	}
	if diff := cmp.Diff(want, env.Dependencies); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
	// Channels come from package sources in first-occurrence order.
	assert.Equal(t, []string{"conda-forge", "bioconda"}, env.Channels)
	assert.False(t, env.HasPip())
}

func TestFromPackagesWithBuildStrings(t *testing.T) {
	opts := defaultOptions()
	opts.IncludeBuild = true
	env, err := FromPackages(context.Background(), samplePackages(), opts)
	require.NoError(t, err)
	assert.Equal(t, "h1234567_0", env.Dependencies[0].Build)
}

func TestFromPackagesPipSection(t *testing.T) {
	opts := defaultOptions()
	opts.IncludePip = true
	env, err := FromPackages(context.Background(), samplePackages(), opts)
	require.NoError(t, err)

	require.True(t, env.HasPip())
	require.Len(t, env.Pip, 1)
	assert.Equal(t, types.PackageSpec{Name: "requests", Version: "=2.31.0"}, env.Pip[0])
}

func TestFromPackagesWithoutChannels(t *testing.T) {
	opts := defaultOptions()
	opts.IncludeChannels = false
	env, err := FromPackages(context.Background(), samplePackages(), opts)
	require.NoError(t, err)
	assert.Nil(t, env.Channels)
}

func TestFromPackagesEmptyList(t *testing.T) {
	env, err := FromPackages(context.Background(), nil, defaultOptions())
	require.NoError(t, err)
	assert.Empty(t, env.Dependencies)
	assert.False(t, env.HasPip())
}
