package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixi-envsync/internal/types"
)

func TestParsePackageSpec(t *testing.T) {
	tests := []struct {
		raw  string
		want types.PackageSpec
	}{
		{"numpy", types.PackageSpec{Name: "numpy"}},
		{"numpy *", types.PackageSpec{Name: "numpy", Version: "*"}},
		{"numpy=1.24.0", types.PackageSpec{Name: "numpy", Version: "=1.24.0"}},
		{"requests==2.31.0", types.PackageSpec{Name: "requests", Version: "==2.31.0"}},
		{"python>=3.10", types.PackageSpec{Name: "python", Version: ">=3.10"}},
		{"python >=3.10,<3.12", types.PackageSpec{Name: "python", Version: ">=3.10,<3.12"}},
		{"libfoo!=1.2", types.PackageSpec{Name: "libfoo", Version: "!=1.2"}},
		{"libfoo~=1.2", types.PackageSpec{Name: "libfoo", Version: "~=1.2"}},
		{"libfoo<=1.2", types.PackageSpec{Name: "libfoo", Version: "<=1.2"}},
		{"numpy=1.24.0=py310h1234567_0", types.PackageSpec{Name: "numpy", Version: "=1.24.0", Build: "py310h1234567_0"}},
		{"python_abi=3.10=cp310", types.PackageSpec{Name: "python_abi", Version: "=3.10", Build: "cp310"}},
		{"scikit-learn=1.3.0", types.PackageSpec{Name: "scikit-learn", Version: "=1.3.0"}},
		{"  numpy  ", types.PackageSpec{Name: "numpy"}},
	}
	for _, tt := range tests {
		spec, err := ParsePackageSpec(tt.raw)
		require.NoError(t, err, "raw: %s", tt.raw)
		if diff := cmp.Diff(tt.want, spec); diff != "" {
			t.Fatalf("unexpected spec for %q (-want +got):\n%s", tt.raw, diff)
		}
	}
}

func TestParsePackageSpecMalformed(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"=1.2.3",
		"numpy>=",
		"numpy 1.24.0",
		"num py>=1.0",
		"numpy=1.24.0=",
		"numpy==",
	}
	for _, raw := range tests {
		_, err := ParsePackageSpec(raw)
		assert.Error(t, err, "raw: %q", raw)
	}
}

func TestSpecStringRoundTrip(t *testing.T) {
	entries := []string{
		"numpy",
		"numpy=1.24.0",
		"requests==2.31.0",
		"python>=3.10,<3.12",
		"numpy=1.24.0=py310h1234567_0",
	}
	for _, entry := range entries {
		spec, err := ParsePackageSpec(entry)
		require.NoError(t, err)
		assert.Equal(t, entry, SpecString(spec))

		again, err := ParsePackageSpec(SpecString(spec))
		require.NoError(t, err)
		assert.Equal(t, spec, again)
	}
}

func TestSpecStringAnyVersion(t *testing.T) {
	spec, err := ParsePackageSpec("numpy *")
	require.NoError(t, err)
	assert.Equal(t, "numpy *", SpecString(spec))
}
