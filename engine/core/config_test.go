package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	data := `
[window]
title = "Viewer"
width = 800

[camera]
fov = 45.0

[speeds]
rotation = 10.0

[loader]
normalize = false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Viewer", cfg.Window.Title)
	assert.Equal(t, uint32(800), cfg.Window.Width)
	// untouched keys keep their defaults
	assert.Equal(t, uint32(768), cfg.Window.Height)
	assert.Equal(t, float32(45), cfg.Camera.FOV)
	assert.Equal(t, float32(500), cfg.Camera.Far)
	assert.Equal(t, float32(10), cfg.Speeds.Rotation)
	assert.Equal(t, float32(0.1), cfg.Speeds.Translation)
	assert.False(t, cfg.Loader.Normalize)
	assert.True(t, cfg.Loader.Watch)
	assert.Equal(t, "./object_files", cfg.Paths.Materials)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nwidth = "), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	require.NoError(t, os.WriteFile(path, []byte("[camera]\nnear = 10.0\nfar = 1.0\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	cfg := DefaultConfig()
	cfg.Window.Title = "Saved"
	cfg.Speeds.Camera = 0.5
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	assert.Equal(t, DefaultConfigPath, ResolveConfigPath(""))

	t.Setenv(ConfigEnvVar, "/etc/studio.toml")
	assert.Equal(t, "/etc/studio.toml", ResolveConfigPath(""))
	assert.Equal(t, "local.toml", ResolveConfigPath("local.toml"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLogLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLogLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLogLevel("error"))
	assert.Equal(t, InfoLevel, ParseLogLevel("verbose"))
}
