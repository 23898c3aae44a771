package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/minaret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "./migrations", cfg.MigrationsPath)
	assert.Equal(t, "setup-token", cfg.SetupToken)
	assert.False(t, cfg.Production())
}

func TestLoadProductionFlag(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/minaret")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	// t.Setenv records the original value for cleanup; unset afterwards
	// so the required check actually trips
	t.Setenv("DATABASE_URL", "x")
	os.Unsetenv("DATABASE_URL")

	_, err := Load()
	assert.Error(t, err)
}
