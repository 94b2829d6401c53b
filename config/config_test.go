package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galvanized/raymarch/config"
)

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raymarch.yaml")
	yaml := "threads: 4\ntile_size: 16\nmax_steps: 512\nmax_distance: 500\nascii_ramp: \" .#\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Threads)
	require.Equal(t, 16, cfg.TileSize)
	require.Equal(t, 512, cfg.MaxSteps)
	require.Equal(t, 500.0, cfg.MaxDistance)
	require.Equal(t, " .#", cfg.AsciiRamp)
}

func TestLoadMissingFileReturnsWrappedError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAMLReturnsWrappedError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: [unterminated"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestDefaultIsZeroValue(t *testing.T) {
	require.Equal(t, config.Config{}, config.Default())
}
