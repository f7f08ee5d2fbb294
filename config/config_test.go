package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig(dir)
	cfg.General.LogLevel = "debug"
	require.NoError(cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(err)
	require.Equal(cfg, loaded)
}

func TestLoadConfigMissingFile(t *testing.T) {
	require := require.New(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(err)
}

func TestDefaultConfigPaths(t *testing.T) {
	require := require.New(t)

	cfg := DefaultConfig("/tmp/home")
	require.Equal("/tmp/home/data/state_db", cfg.Database.StatePath)
	require.Equal("/tmp/home/data/ledger.bin", cfg.Ledger.SnapshotPath)
	require.Equal("info", cfg.General.LogLevel)
}
