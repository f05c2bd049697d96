package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert messages
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: repeated failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// QueryParamAPIKey carries the key for browser websocket and EventSource
// clients, which cannot set headers.
const QueryParamAPIKey = "api_key"

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// Header redaction marker
const RedactedValue = "[REDACTED]"

// failedAuthAlertThreshold is the failed attempts per window before alerting
const failedAuthAlertThreshold = 5

// highRateLogEvery throttles the rate-limit alert log
const highRateLogEvery = 100

// maxTrackedIPs bounds the per-client counters kept by the rate limiter
const maxTrackedIPs = 4096

// Defaults applied when Options leaves a limit unset
const (
	DefaultRateLimitRequests = 6000
	DefaultRateLimitWindow   = time.Minute
	DefaultMaxRequestBytes   = 64 << 10
	readHeaderTimeout        = 5 * time.Second
)

// Route paths
const (
	APIPrefix        = "/api/v1"
	RouteState       = "/state"
	RoutePet         = "/pet"
	RouteUpgrades    = "/upgrades"
	RoutePurchase    = "/upgrades/{id}/purchase"
	RouteRebirth     = "/rebirth"
	RoutePixelMode   = "/settings/pixel-mode"
	RouteEvents      = "/events"
	RouteWebSocket   = "/ws"
	RouteEventStream = "/stream"
)
