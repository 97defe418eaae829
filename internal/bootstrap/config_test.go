package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "/api/usuarios", cfg.APIBasePath)
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
	assert.Equal(t, 45*time.Second, cfg.DBSocketTimeout)
	assert.Empty(t, cfg.RedisAddr, "默认不启用限流")
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", " Production ")
	t.Setenv("API_BASE_PATH", "api/v2/usuarios/")
	t.Setenv("DB_SOCKET_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "verbose")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "/api/v2/usuarios", cfg.APIBasePath)
	assert.Equal(t, 30*time.Second, cfg.DBSocketTimeout)
	assert.Equal(t, "info", cfg.LogLevel, "非法日志级别应回退为 info")
}

func TestLoadConfig_RejectsRootBasePath(t *testing.T) {
	t.Setenv("API_BASE_PATH", "/")

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	_, err := LoadConfig()

	assert.Error(t, err)
}
