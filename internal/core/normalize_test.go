package core

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixi-envsync/internal/types"
)

func defaultOptions() types.Options {
	opts := types.DefaultOptions()
	return opts
}

func TestNormalizeNameAndPrefixOverride(t *testing.T) {
	env := types.Environment{Name: "exported", Prefix: "/old"}

	opts := defaultOptions()
	opts.Name = "custom"
	opts.Prefix = "/opt/env"
	out, err := Normalize(context.Background(), env, opts)
	require.NoError(t, err)
	assert.Equal(t, "custom", out.Name)
	assert.Equal(t, "/opt/env", out.Prefix)

	// Without overrides the source values survive.
	out, err = Normalize(context.Background(), env, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "exported", out.Name)
	assert.Equal(t, "/old", out.Prefix)
}

func TestNormalizeChannels(t *testing.T) {
	env := types.Environment{
		Channels: []string{"conda-forge", "bioconda", "conda-forge"},
	}

	out, err := Normalize(context.Background(), env, defaultOptions())
	require.NoError(t, err)
	// Duplicates collapse keeping the first occurrence; order is
	// otherwise preserved verbatim, never sorted.
	assert.Equal(t, []string{"conda-forge", "bioconda"}, out.Channels)

	opts := defaultOptions()
	opts.IncludeChannels = false
	out, err = Normalize(context.Background(), env, opts)
	require.NoError(t, err)
	assert.Nil(t, out.Channels)
}

func TestNormalizeDuplicateDependency(t *testing.T) {
	env := types.Environment{
		Dependencies: []types.PackageSpec{
			{Name: "numpy", Version: "=1.24.0"},
			{Name: "numpy", Version: "=1.25.0"},
		},
	}
	_, err := Normalize(context.Background(), env, defaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNormalizeDuplicatePipByNormalizedName(t *testing.T) {
	env := types.Environment{
		Pip: []types.PackageSpec{
			{Name: "PyYAML", Version: "==6.0"},
			{Name: "pyyaml", Version: "==6.0.1"},
		},
	}
	opts := defaultOptions()
	opts.IncludePip = true
	_, err := Normalize(context.Background(), env, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNormalizeCollapsesAnyVersionForms(t *testing.T) {
	env := types.Environment{
		Dependencies: []types.PackageSpec{
			{Name: "numpy", Version: "*"},
			{Name: "pandas", Version: "=*"},
			{Name: "scipy", Version: "==*"},
			{Name: "requests"},
		},
	}
	out, err := Normalize(context.Background(), env, defaultOptions())
	require.NoError(t, err)
	for _, spec := range out.Dependencies {
		assert.Empty(t, spec.Version, "package: %s", spec.Name)
	}
}

func TestNormalizeExplicitPins(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"=1.24.0", "=1.24.0"},
		{"==2.31.0", "=2.31.0"},
		{"", ""},
		// No exact version is unambiguously extractable from ranges,
		// exclusions, or wildcards: rewrite to unconstrained instead
		// of guessing.
		{">=3.10,<3.12", ""},
		{">=3.10", ""},
		{"!=1.2", ""},
		{"~=1.4", ""},
		{"=1.24.*", ""},
		{"==1.24.0,!=1.24.1", ""},
	}
	for _, tt := range tests {
		env := types.Environment{
			Dependencies: []types.PackageSpec{{Name: "pkg", Version: tt.version}},
		}
		opts := defaultOptions()
		opts.Explicit = true
		out, err := Normalize(context.Background(), env, opts)
		require.NoError(t, err, "version: %s", tt.version)
		if diff := cmp.Diff(tt.want, out.Dependencies[0].Version); diff != "" {
			t.Fatalf("unexpected pin for %q (-want +got):\n%s", tt.version, diff)
		}
	}
}

func TestNormalizeBuildStrings(t *testing.T) {
	env := types.Environment{
		Dependencies: []types.PackageSpec{
			{Name: "numpy", Version: "=1.24.0", Build: "py310h1234567_0"},
		},
	}

	out, err := Normalize(context.Background(), env, defaultOptions())
	require.NoError(t, err)
	assert.Empty(t, out.Dependencies[0].Build)

	opts := defaultOptions()
	opts.IncludeBuild = true
	out, err = Normalize(context.Background(), env, opts)
	require.NoError(t, err)
	assert.Equal(t, "py310h1234567_0", out.Dependencies[0].Build)
}

func TestNormalizePipSection(t *testing.T) {
	env := types.Environment{
		Dependencies: []types.PackageSpec{{Name: "python", Version: ">=3.10"}},
		Pip:          []types.PackageSpec{{Name: "requests", Version: "==2.31.0"}},
	}

	// Pip is stripped entirely (absent, not empty) unless included.
	out, err := Normalize(context.Background(), env, defaultOptions())
	require.NoError(t, err)
	assert.False(t, out.HasPip())

	opts := defaultOptions()
	opts.IncludePip = true
	out, err = Normalize(context.Background(), env, opts)
	require.NoError(t, err)
	require.True(t, out.HasPip())
	assert.Equal(t, "requests", out.Pip[0].Name)
}

func TestNormalizeRejectsInvalidPipSpecifier(t *testing.T) {
	env := types.Environment{
		Pip: []types.PackageSpec{{Name: "requests", Version: ">=2.31.0,bogus"}},
	}
	opts := defaultOptions()
	opts.IncludePip = true
	_, err := Normalize(context.Background(), env, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pip specifier")
}

func TestNormalizeOptionConflict(t *testing.T) {
	opts := defaultOptions()
	opts.Explicit = true
	opts.IncludeBuild = true
	_, err := Normalize(context.Background(), types.Environment{}, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "option conflict")
}

func TestNormalizeIsIdempotent(t *testing.T) {
	env := types.Environment{
		Name:     "demo",
		Channels: []string{"conda-forge", "conda-forge", "bioconda"},
		Dependencies: []types.PackageSpec{
			{Name: "python", Version: ">=3.10"},
			{Name: "numpy", Version: "*", Build: "py310_0"},
		},
		Pip: []types.PackageSpec{{Name: "requests", Version: "==2.31.0"}},
	}
	opts := defaultOptions()
	opts.IncludePip = true

	once, err := Normalize(context.Background(), env, opts)
	require.NoError(t, err)
	twice, err := Normalize(context.Background(), once, opts)
	require.NoError(t, err)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("normalize not idempotent (-once +twice):\n%s", diff)
	}
}
