package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating/internal/config"
)

func TestRateLimit_NoRedisIsNoop(t *testing.T) {
	e := echo.New()
	g := e.Group("", RateLimit(config.LoadRateLimitConfig(), nil))
	g.GET("/x", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected passthrough 200, got %d", w.Code)
	}
}

func TestResponseCache_NoRedisIsNoop(t *testing.T) {
	e := echo.New()
	g := e.Group("", ResponseCache(config.LoadCacheConfig(), nil))
	g.GET("/x", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("expected passthrough response, got %d %q", w.Code, w.Body.String())
	}
}

func TestEncodeDecodePayload(t *testing.T) {
	status, body, ok := decodePayload(encodePayload(http.StatusOK, []byte(`{"a":1}`)))
	if !ok || status != http.StatusOK || string(body) != `{"a":1}` {
		t.Fatalf("round trip failed: ok=%v status=%d body=%q", ok, status, body)
	}
	if _, _, ok := decodePayload([]byte{1, 2}); ok {
		t.Error("expected short payload to be rejected")
	}
}
