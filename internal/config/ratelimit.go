package config

import (
    "os"
    "strconv"
    "time"
)

// RateLimitConfig configures the Redis token buckets in front of ticket
// pricing, receipts and admin login.  Every client IP gets one bucket per
// endpoint.  Login has its own smaller bucket, see Login.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int
    RefillTokens   int
    RefillInterval time.Duration
    TTL            time.Duration
    Prefix         string
    Debug          bool

    LoginCapacity       int
    LoginRefillInterval time.Duration
}

func LoadRateLimitConfig() RateLimitConfig {
    def := RateLimitConfig{
        Enabled:             envBool("RATE_LIMIT_ENABLED", true),
        Capacity:            envInt("RATE_LIMIT_CAPACITY", 30),
        RefillTokens:        envInt("RATE_LIMIT_REFILL_TOKENS", 1),
        RefillInterval:      envDur("RATE_LIMIT_REFILL_INTERVAL", 2*time.Second),
        TTL:                 envDur("RATE_LIMIT_TTL", 10*time.Minute),
        Prefix:              envStr("RATE_LIMIT_PREFIX", "museum:rl"),
        Debug:               envBool("RATE_LIMIT_DEBUG", false),
        LoginCapacity:       envInt("LOGIN_RATE_LIMIT_CAPACITY", 5),
        LoginRefillInterval: envDur("LOGIN_RATE_LIMIT_REFILL_INTERVAL", time.Minute),
    }
    return def.normalize()
}

// Login derives the admin login bucket: LoginCapacity attempts, one more
// per LoginRefillInterval, stored under its own prefix.
func (c RateLimitConfig) Login() RateLimitConfig {
    l := c
    l.Capacity = c.LoginCapacity
    l.RefillTokens = 1
    l.RefillInterval = c.LoginRefillInterval
    l.Prefix = c.Prefix + ":login"
    return l.normalize()
}

// normalize clamps values that would make a bucket useless.
func (c RateLimitConfig) normalize() RateLimitConfig {
    if c.Capacity < 1 { c.Capacity = 1 }
    if c.RefillTokens < 1 { c.RefillTokens = 1 }
    if c.RefillInterval <= 0 { c.RefillInterval = time.Second }
    if c.LoginCapacity < 1 { c.LoginCapacity = 1 }
    if c.LoginRefillInterval <= 0 { c.LoginRefillInterval = time.Minute }
    if minTTL := 5 * c.RefillInterval; c.TTL < minTTL { c.TTL = minTTL }
    return c
}

func envStr(k, d string) string { if v := os.Getenv(k); v != "" { return v }; return d }
func envBool(k string, d bool) bool {
    v := os.Getenv(k)
    if v == "" { return d }
    switch v {
    case "1","true","TRUE","True","yes","YES","on","ON": return true
    case "0","false","FALSE","False","no","NO","off","OFF": return false
    }
    return d
}
func envInt(k string, d int) int {
    v := os.Getenv(k); if v == "" { return d }
    if n, err := strconv.Atoi(v); err == nil { return n }
    return d
}
func envDur(k string, d time.Duration) time.Duration {
    v := os.Getenv(k); if v == "" { return d }
    if dur, err := time.ParseDuration(v); err == nil { return dur }
    return d
}
