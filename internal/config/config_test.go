package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingDefaultConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err, "a missing default config file is not an error")
	assert.Empty(t, cfg.Instance)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aetools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"instance: ACE\nserver: sched01:9000\nautorep: /opt/ae/bin/autorep\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ACE", cfg.Instance)
	assert.Equal(t, "sched01:9000", cfg.Server)
	assert.Equal(t, "/opt/ae/bin/autorep", cfg.Autorep)
	assert.Empty(t, cfg.User)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AETOOLS_INSTANCE", "PRD")
	t.Setenv("AETOOLS_USER", "batch")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "PRD", cfg.Instance)
	assert.Equal(t, "batch", cfg.User)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aetools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("instance: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
