package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "memory", cfg.LockDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 60, cfg.MinLeadTimeMinutes)
	assert.Equal(t, 3, cfg.NoShowLimit)
	assert.Equal(t, "America/Sao_Paulo", cfg.ShopTimezone)
	assert.Equal(t, "barbershop.events", cfg.EventsExchange)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOCK_DRIVER", "redis")
	t.Setenv("NO_SHOW_LIMIT", "5")
	t.Setenv("JWT_TTL", "90m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "redis", cfg.LockDriver)
	assert.Equal(t, 5, cfg.NoShowLimit)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
}

func TestLoadRejectsUnknownDrivers(t *testing.T) {
	t.Setenv("LOCK_DRIVER", "zookeeper")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownShopTimezone(t *testing.T) {
	t.Setenv("SHOP_TIMEZONE", "Mars/Olympus")
	_, err := Load()
	assert.Error(t, err)
}
