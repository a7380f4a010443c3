package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafedir/config"
)

func TestInitDefaults(t *testing.T) {
	t.Setenv("API_KEY", "secret-from-env")

	require.NoError(t, config.Init())
	cfg := config.Get()

	assert.Equal(t, "secret-from-env", cfg.APIKey)
	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, "cafes.db", cfg.DatabaseDSN)
	assert.Equal(t, "info", cfg.LogLevel)
}
