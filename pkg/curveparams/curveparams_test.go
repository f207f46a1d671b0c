package curveparams

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBN254BuildsTower(t *testing.T) {
	p, err := BN254()
	require.NoError(t, err)
	require.Equal(t, "bn254", p.Name)
	require.NotNil(t, p.Fp12)
}

func TestExample462BuildsCurve(t *testing.T) {
	p, err := Example462()
	require.NoError(t, err)
	require.Equal(t, "example462", p.Name)
	require.NotNil(t, p.Curve)
}

func TestLoadValidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.toml")
	contents := `
name = "toy"
prime = "2055236678969533001948963524292549209725396610320044949542151"
fp2_non_residue = "-1"
fp6_non_residue_c0 = "9"
fp6_non_residue_c1 = "1"
fp3_non_residue = "-2"
curve_a = ["1", "0", "0"]
curve_b = ["3", "0", "0"]
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "toy", p.Name)
}

func TestLoadMalformedTOMLWrapsErrParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrParse))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/preset.toml")
	require.Error(t, err)
}
