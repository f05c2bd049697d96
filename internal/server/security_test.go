package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector(100, time.Minute))

	tests := []struct {
		name           string
		setup          func(*http.Request)
		path           string
		expectedStatus int
	}{
		{
			name:           "Valid API Key Header",
			setup:          func(r *http.Request) { r.Header.Set(HeaderAPIKey, apiKey) },
			path:           "/api/v1/state",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Valid Bearer Token",
			setup:          func(r *http.Request) { r.Header.Set(HeaderAuthorization, "Bearer "+apiKey) },
			path:           "/api/v1/state",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Valid Query Parameter",
			setup:          func(r *http.Request) {},
			path:           "/api/v1/ws?api_key=" + apiKey,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid API Key",
			setup:          func(r *http.Request) { r.Header.Set(HeaderAPIKey, "wrong-key") },
			path:           "/api/v1/state",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing API Key",
			setup:          func(r *http.Request) {},
			path:           "/api/v1/pet",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Public Path - Healthz",
			setup:          func(r *http.Request) {},
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Metrics",
			setup:          func(r *http.Request) {},
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_EmptyKeyDisablesCheck(t *testing.T) {
	middleware := AuthMiddleware("", nil, NewSuspiciousActivityDetector(100, time.Minute))
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/pet", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set(HeaderForwardedFor, "203.0.113.7, 198.51.100.2")

	assert.Equal(t, "10.0.0.1", extractIP(req, nil), "untrusted proxy header is ignored")
	assert.Equal(t, "198.51.100.2", extractIP(req, []string{"10.0.0.1"}))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		if _, err := r.Body.Read(buf); err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader("{\"confirm\":true}")))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
