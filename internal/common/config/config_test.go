package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 10, cfg.ReadTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("READ_TIMEOUT", "30")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30, cfg.ReadTimeout)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\nwriteTimeout: 25\n"), 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 25, cfg.WriteTimeout)

	// Переменные окружения перекрывают файл.
	t.Setenv("PORT", "7000")
	cfg = Load()
	assert.Equal(t, "7000", cfg.Port)
}
