package config_test

import (
	"testing"

	"outfit-picker/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "local", cfg.Closet.Source)
	assert.Equal(t, ".png", cfg.Closet.Extension)
	assert.False(t, cfg.Closet.SkipSymlinkCheck)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "closet.json", cfg.Store.ConfigPath)
	assert.Equal(t, "rotation.json", cfg.Store.StatePath)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CLOSET_EXTENSION", ".webp")
	t.Setenv("STORE_BACKEND", "db")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, ".webp", cfg.Closet.Extension)
	assert.Equal(t, "db", cfg.Store.Backend)
}

func TestConfig_Validators(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Closet.IsValidSource())
	assert.True(t, cfg.Store.IsValidBackend())

	cfg.Closet.Source = "ftp"
	assert.False(t, cfg.Closet.IsValidSource())

	cfg.Store.Backend = "redis"
	assert.False(t, cfg.Store.IsValidBackend())
}
