package config

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
    cfg := LoadRateLimitConfig()
    assert.True(t, cfg.Enabled)
    assert.Equal(t, 30, cfg.Capacity)
    assert.Equal(t, "museum:rl", cfg.Prefix)
    assert.Equal(t, 5, cfg.LoginCapacity)
}

func TestRateLimitLoginBucket(t *testing.T) {
    t.Setenv("LOGIN_RATE_LIMIT_CAPACITY", "3")
    t.Setenv("LOGIN_RATE_LIMIT_REFILL_INTERVAL", "30s")

    base := LoadRateLimitConfig()
    login := base.Login()
    assert.Equal(t, 3, login.Capacity)
    assert.Equal(t, 1, login.RefillTokens)
    assert.Equal(t, 30*time.Second, login.RefillInterval)
    assert.Equal(t, "museum:rl:login", login.Prefix)
    assert.GreaterOrEqual(t, login.TTL, 150*time.Second)
    // the general bucket is untouched
    assert.Equal(t, 30, base.Capacity)
}

func TestLoadRateLimitConfigNormalizes(t *testing.T) {
    t.Setenv("RATE_LIMIT_CAPACITY", "0")
    t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
    t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "3s")
    t.Setenv("RATE_LIMIT_TTL", "1s")
    t.Setenv("RATE_LIMIT_ENABLED", "off")

    cfg := LoadRateLimitConfig()
    assert.False(t, cfg.Enabled)
    assert.Equal(t, 1, cfg.Capacity)
    assert.Equal(t, 1, cfg.RefillTokens)
    assert.Equal(t, 15*time.Second, cfg.TTL)
}

func TestLoadCacheConfig(t *testing.T) {
    t.Setenv("CACHE_METHODS", "get, head")
    t.Setenv("CACHE_TTL", "not-a-duration")

    cfg := LoadCacheConfig()
    assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, cfg.Methods)
    assert.Equal(t, time.Minute, cfg.TTL)
    assert.Equal(t, "museum:cache", cfg.Prefix)
}

func TestLoadEventsConfig(t *testing.T) {
    t.Setenv("AMQP_URL", "amqp://b:b@broker:5672/")
    cfg := LoadEventsConfig()
    assert.Equal(t, "amqp://b:b@broker:5672/", cfg.URL)
    assert.Equal(t, "receipt.issued", cfg.Queue)

    t.Setenv("RABBITMQ_URL", "amqp://a:a@rabbit:5672/")
    assert.Equal(t, "amqp://a:a@rabbit:5672/", LoadEventsConfig().URL)
}

func TestLoadFixturesSource(t *testing.T) {
    t.Setenv("APP_ENV", "test")
    t.Setenv("APP_PORT", "8080")
    t.Setenv("JWT_SECRET", "s")
    t.Setenv("DATA_SOURCE", "FIXTURES")

    cfg := Load()
    assert.Equal(t, SourceFixtures, cfg.DataSource)
    assert.Equal(t, 30, cfg.AccessTTLMin)
    assert.Equal(t, "admin", cfg.AdminUsername)
    assert.Empty(t, cfg.DBHost)
}

func TestRedisOptions(t *testing.T) {
    t.Setenv("REDIS_HOST", "cache")
    t.Setenv("REDIS_PORT", "6380")
    t.Setenv("REDIS_DB", "2")

    opts := RedisOptions()
    assert.Equal(t, "cache:6380", opts.Addr)
    assert.Equal(t, 2, opts.DB)
    assert.Nil(t, opts.TLSConfig)
}
