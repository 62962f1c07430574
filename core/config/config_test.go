package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"static-server/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "SERVER_ROOT", "SERVER_SERIAL", "SERVER_SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.Root)
	assert.True(t, cfg.Server.Serial)
	assert.Equal(t, time.Duration(0), cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_ROOT", "/srv/www")
	t.Setenv("SERVER_SERIAL", "false")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "250ms")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/srv/www", cfg.Server.Root)
	assert.False(t, cfg.Server.Serial)
	assert.Equal(t, 250*time.Millisecond, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9090\nLOG_LEVEL=debug\n"), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MalformedEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_SERIAL", "sometimes")

	_, err := config.LoadConfig(t.TempDir())
	assert.Error(t, err)
}
