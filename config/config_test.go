package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, New(), cfg)
	require.Equal(t, "localhost", cfg.ServerConfig.Host)
	require.Equal(t, 8080, cfg.ServerConfig.Port)
	require.Equal(t, "text", cfg.OutputConfig.Format)
	require.False(t, cfg.SortConfig.Stable)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bibsort.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
loader:
  path: data/index.txt
sort:
  stable: true
server:
  port: 9090
log:
  level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "data/index.txt", cfg.LoaderConfig.Path)
	require.Equal(t, 1<<20, cfg.LoaderConfig.MaxLineBytes)
	require.True(t, cfg.SortConfig.Stable)
	require.Equal(t, 9090, cfg.ServerConfig.Port)
	require.Equal(t, "localhost", cfg.ServerConfig.Host)
	require.Equal(t, "debug", cfg.LogConfig.Level)
}

func TestEnv(t *testing.T) {
	t.Setenv("BIBSORT_SERVER_PORT", "7000")
	t.Setenv("BIBSORT_OUTPUT_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 7000, cfg.ServerConfig.Port)
	require.Equal(t, "json", cfg.OutputConfig.Format)
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
