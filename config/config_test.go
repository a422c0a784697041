package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcelsud/robot-notify/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("success - defaults without file", func(t *testing.T) {
		cfg, err := config.Load(t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "robots.yaml", cfg.RobotsFile)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout())
		assert.True(t, cfg.LogJSON)
		assert.Equal(t, "robot-notify", cfg.ServiceName)
	})

	t.Run("success - file values", func(t *testing.T) {
		dir := t.TempDir()
		content := `PORT = "9090"
ROBOTS_FILE = "/etc/robots.yaml"
HTTP_TIMEOUT_SECONDS = 3
LOG_JSON = false
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

		cfg, err := config.Load(dir)

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "/etc/robots.yaml", cfg.RobotsFile)
		assert.Equal(t, 3*time.Second, cfg.HTTPTimeout())
		assert.False(t, cfg.LogJSON)
	})

	t.Run("success - environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "7070")

		cfg, err := config.Load(t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Port)
	})

	t.Run("error - invalid toml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(`PORT = = "x"`), 0o600))

		_, err := config.Load(dir)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("error - non positive timeout", func(t *testing.T) {
		t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

		_, err := config.Load(t.TempDir())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP_TIMEOUT_SECONDS")
	})
}
