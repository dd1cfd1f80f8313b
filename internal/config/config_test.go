package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_DefaultsOnly(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPServerAddr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 15*time.Minute, cfg.Cache.SlidingTTL)
	assert.Equal(t, time.Hour, cfg.Cache.AbsoluteTTL)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestDecode_FileOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
log_level: DEBUG
http_server_addr: ":9090"
redis:
  addr: "redis:6379"
  db: 3
cache:
  sliding_ttl: 5m
  absolute_ttl: 30m
`)))

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.HTTPServerAddr)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 5*time.Minute, cfg.Cache.SlidingTTL)
	assert.Equal(t, 30*time.Minute, cfg.Cache.AbsoluteTTL)
}

func TestDecode_BadLevel(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("log_level", "LOUD")

	_, err := decode(v)
	assert.Error(t, err)
}
