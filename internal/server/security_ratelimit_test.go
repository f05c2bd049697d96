package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	const limit = 50
	detector := NewSuspiciousActivityDetector(limit, time.Minute)
	middleware := RateLimitMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/api/v1/pet", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < limit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	assert.Equal(t, limit+1, detector.requests(ip))

	// Another client has its own budget
	other := httptest.NewRequest("GET", "/api/v1/pet", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSuspiciousActivityDetector_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	detector := NewSuspiciousActivityDetector(1, time.Minute)
	detector.now = func() time.Time { return now }

	assert.True(t, detector.RecordRequest("1.2.3.4"))
	assert.False(t, detector.RecordRequest("1.2.3.4"))

	now = now.Add(2 * time.Minute)
	assert.True(t, detector.RecordRequest("1.2.3.4"))
}

func TestNewSuspiciousActivityDetector_Defaults(t *testing.T) {
	detector := NewSuspiciousActivityDetector(0, 0)
	assert.Equal(t, DefaultRateLimitRequests, detector.limit)
	assert.Equal(t, DefaultRateLimitWindow, detector.window)
}

func TestSuspiciousActivityDetector_BoundsTrackedClients(t *testing.T) {
	detector := NewSuspiciousActivityDetector(10, time.Minute)

	for i := 0; i < maxTrackedIPs+10; i++ {
		detector.RecordRequest(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}

	assert.Equal(t, maxTrackedIPs, detector.byIP.Len())
	assert.Equal(t, 0, detector.requests("10.0.0.0"), "oldest client should be evicted")
}

func TestSuspiciousActivityDetector_FailedAuthSharesWindow(t *testing.T) {
	detector := NewSuspiciousActivityDetector(5, time.Minute)

	detector.RecordFailedAuth("1.2.3.4")
	assert.True(t, detector.RecordRequest("1.2.3.4"))
	assert.Equal(t, 1, detector.requests("1.2.3.4"))
}
