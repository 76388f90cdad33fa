package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/binary"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/store-rating/internal/config"
)

// captureWriter captures the response body and status while forwarding
// them to the client unchanged.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int64
    limit  int64
}

func (cw *captureWriter) WriteHeader(code int) { cw.status = code; cw.ResponseWriter.WriteHeader(code) }
func (cw *captureWriter) Write(b []byte) (int, error) {
    if cw.size < cw.limit {
        if remain := cw.limit - cw.size; int64(len(b)) <= remain {
            cw.buf.Write(b)
        } else {
            cw.buf.Write(b[:remain])
        }
    }
    cw.size += int64(len(b))
    return cw.ResponseWriter.Write(b)
}

// cacheKeyFrom builds a stable key from route, query string and caller.
// The caller goes into the key because store listings embed the caller's
// own rating per row, so two users must never share an entry.
func cacheKeyFrom(cfg config.CacheConfig, c echo.Context) string {
    tail := strings.Join([]string{
        "route", c.Path(),
        "q", c.Request().URL.RawQuery,
        "u", fmt.Sprint(c.Get("user_id")),
    }, ":")
    sum := sha1.Sum([]byte(tail))
    return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// encodePayload packs: [4 bytes status][body].
func encodePayload(status int, body []byte) []byte {
    out := make([]byte, 4+len(body))
    binary.BigEndian.PutUint32(out[0:4], uint32(status))
    copy(out[4:], body)
    return out
}

func decodePayload(bs []byte) (status int, body []byte, ok bool) {
    if len(bs) < 4 {
        return 0, nil, false
    }
    return int(binary.BigEndian.Uint32(bs[0:4])), bs[4:], true
}

// ResponseCache serves recent GET responses from Redis.  Only successful
// JSON responses within the configured size are cached; everything else
// passes straight through.  With no Redis client the middleware is a
// no-op.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }
            key := cacheKeyFrom(cfg, c)

            ctx, cancel := context.WithTimeout(c.Request().Context(), 500*time.Millisecond)
            defer cancel()
            if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
                if status, body, ok := decodePayload(bs); ok {
                    return c.Blob(status, echo.MIMEApplicationJSON, body)
                }
            }

            cw := &captureWriter{
                ResponseWriter: c.Response().Writer,
                status:         http.StatusOK,
                limit:          int64(cfg.MaxBodyBytes),
            }
            c.Response().Writer = cw
            if err := next(c); err != nil {
                return err
            }

            // Store only complete 200 responses; a truncated capture means
            // the body exceeded the limit.
            if cw.status == http.StatusOK && cw.size <= cw.limit {
                _ = rdb.Set(ctx, key, encodePayload(cw.status, cw.buf.Bytes()), ttl).Err()
            }
            return nil
        }
    }
}
