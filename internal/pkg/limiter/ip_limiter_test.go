package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestMiddleware_LimitsPerIP(t *testing.T) {
	l := NewIPRateLimiter("test", rate.Every(time.Hour), 2)
	defer l.Stop()

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(addr string) int {
		r := httptest.NewRequest(http.MethodPost, "/ui/login", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:1234"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:5678"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:9999"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2:1234"))
}

func TestSweep_RemovesRefilledLimiters(t *testing.T) {
	l := NewIPRateLimiter("test", rate.Every(time.Second), 1)
	defer l.Stop()

	l.GetLimiter("a").Allow()
	l.GetLimiter("b")

	removed, remaining := l.sweep(time.Now())
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, remaining)

	removed, remaining = l.sweep(time.Now().Add(time.Minute))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, remaining)
}

func TestStop_Idempotent(t *testing.T) {
	l := NewIPRateLimiter("test", rate.Every(time.Second), 1)
	l.Stop()
	l.Stop()
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:4321"
	assert.Equal(t, "192.0.2.1", clientIP(r))

	r.RemoteAddr = ""
	assert.Equal(t, "unknown_ip", clientIP(r))
}
