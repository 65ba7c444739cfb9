package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	repo := NewConfigRepository()
	path := writeTempConfig(t, "config.toml", `
profiles = ["dev", "prod"]
json = true
`)

	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "prod"}, cfg.Profiles)
	assert.True(t, cfg.JSON)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFileYAML(t *testing.T) {
	repo := NewConfigRepository()
	path := writeTempConfig(t, "config.yaml", `
profiles:
  - staging
verbose: true
`)

	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"staging"}, cfg.Profiles)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigFileJSON(t *testing.T) {
	repo := NewConfigRepository()
	path := writeTempConfig(t, "config.json", `{"profiles": ["default"], "json": true, "verbose": true}`)

	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"default"}, cfg.Profiles)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigFileUnsupportedFormat(t *testing.T) {
	repo := NewConfigRepository()
	path := writeTempConfig(t, "config.ini", "profiles=dev")

	_, err := repo.LoadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing config file")
}

func TestLoadConfigFileDirectory(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(t.TempDir())
	require.Error(t, err)
}
