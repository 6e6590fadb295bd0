package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alecstrong/conway/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "conway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Folders)
	assert.Empty(t, cfg.Author)
	assert.Equal(t, int64(config.DefaultMinActivity), cfg.MinActivity)
	assert.Equal(t, config.DefaultDisplayFloor, cfg.DisplayFloor)
	assert.True(t, cfg.Mailmap)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
folders:
  - src/main
  - src/test
since: 2 weeks ago
min_activity: 50
display_floor: "0.5"
mailmap: false
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/main", "src/test"}, cfg.Folders)
	assert.Equal(t, "2 weeks ago", cfg.Since)
	assert.Equal(t, int64(50), cfg.MinActivity)
	assert.Equal(t, "0.5", cfg.DisplayFloor)
	assert.False(t, cfg.Mailmap)
}

func TestLoadConfigEnvOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "author: bob\n")
	t.Setenv("CONWAY_MIN_ACTIVITY", "25")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.Author)
	assert.Equal(t, int64(25), cfg.MinActivity)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeConfig(t, "min_activity: -1\n")

	_, err := config.LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNegativeMinActivity)

	path = writeConfig(t, "display_floor: lots\n")

	_, err = config.LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrBadDisplayFloor)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
