package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Debug)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadParsesYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	data := "port: \"9090\"\nseed: 42\ndebug: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
}

func TestLoadBrokenYamlFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9090\"\nseed: 42\n"), 0o644))

	t.Setenv("WV_PORT", "7070")
	t.Setenv("WV_SEED", "1000")
	t.Setenv("WV_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, int64(1000), cfg.Seed)
	assert.True(t, cfg.Debug)
}

func TestBadEnvironmentValueFails(t *testing.T) {
	t.Setenv("WV_SEED", "not-a-number")
	_, err := Load("")
	assert.Error(t, err)
}
