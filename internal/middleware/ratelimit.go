package middleware

// Visitors are anonymous, so a bucket belongs to one client IP on one
// endpoint.  The refill-and-take step runs as a Lua script to stay atomic
// across API instances sharing the Redis server.

import (
    "context"
    "fmt"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/dinosaur-museum/internal/config"
)

// KEYS[1] bucket; ARGV now_ms, capacity, refill, interval_ms, ttl_s.
// Returns {taken (0|1), tokens left, ms until the next refill}.
var takeTokenScript = redis.NewScript(`
local now      = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill   = tonumber(ARGV[3])
local interval = tonumber(ARGV[4])

local b = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(b[1]) or capacity
local ts = tonumber(b[2]) or now

local steps = math.floor(math.max(0, now - ts) / interval)
if steps > 0 then
    tokens = math.min(capacity, tokens + steps * refill)
    ts = ts + steps * interval
end

local taken = 0
local wait = 0
if tokens >= 1 then
    taken = 1
    tokens = tokens - 1
else
    wait = math.max(0, interval - (now - ts))
end

redis.call('HSET', KEYS[1], 'tokens', tokens, 'ts', ts)
redis.call('EXPIRE', KEYS[1], tonumber(ARGV[5]))
return {taken, tokens, wait}
`)

// bucketState is the outcome of one take.
type bucketState struct {
    Allowed   bool
    Remaining int64
    Wait      time.Duration
}

// takeToken removes one token from key, refilling it first.
func takeToken(ctx context.Context, rdb *redis.Client, cfg config.RateLimitConfig, key string, now time.Time) (bucketState, error) {
    res, err := takeTokenScript.Run(ctx, rdb, []string{key},
        now.UnixMilli(),
        cfg.Capacity,
        cfg.RefillTokens,
        cfg.RefillInterval.Milliseconds(),
        int64(cfg.TTL/time.Second),
    ).Int64Slice()
    if err != nil {
        return bucketState{}, err
    }
    if len(res) != 3 {
        return bucketState{}, fmt.Errorf("token bucket: unexpected reply %v", res)
    }
    return bucketState{
        Allowed:   res[0] == 1,
        Remaining: res[1],
        Wait:      time.Duration(res[2]) * time.Millisecond,
    }, nil
}

// NewTokenBucket limits each client IP per endpoint.  Redis errors let the
// request through; pricing must not depend on the limiter being up.
func NewTokenBucket(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            key := rateKey(cfg, c)
            st, err := takeToken(c.Request().Context(), rdb, cfg, key, time.Now())
            if err != nil {
                c.Logger().Warnf("[ratelimit] %s: %v", key, err)
                return next(c)
            }

            h := c.Response().Header()
            h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
            h.Set("X-RateLimit-Remaining", strconv.FormatInt(st.Remaining, 10))
            if cfg.Debug {
                h.Set("X-RateLimit-Key", key)
            }
            if st.Allowed {
                return next(c)
            }

            secs := retryAfterSeconds(st.Wait)
            h.Set("Retry-After", strconv.Itoa(secs))
            return c.JSON(http.StatusTooManyRequests, echo.Map{
                "error":       "too_many_requests",
                "message":     "rate limit exceeded",
                "retry_after": secs,
            })
        }
    }
}

// rateKey scopes a bucket to one client on one registered route.
func rateKey(cfg config.RateLimitConfig, c echo.Context) string {
    ip := c.RealIP()
    if ip == "" {
        ip = "unknown"
    }
    return fmt.Sprintf("%s:%s:%s %s", cfg.Prefix, ip, c.Request().Method, c.Path())
}

// retryAfterSeconds rounds up so a client never retries too early.
func retryAfterSeconds(d time.Duration) int {
    if d <= 0 {
        return 0
    }
    return int((d + time.Second - 1) / time.Second)
}
