package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgGetEventsFailed       = "Failed to retrieve events"

	// Mapped from domain errors
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgNotEnoughPetsError     = "Not enough pets for that upgrade yet"
	ErrMsgUpgradeNotFoundError   = "Upgrade not found"
	ErrMsgNoGainAvailableError   = "Your best run has not earned any new hearts yet"
	ErrMsgRebirthNotConfirmedErr = "Rebirth must be confirmed"
	ErrMsgInvalidArgumentError   = "Invalid argument"
)

// Success messages for API responses
const (
	MsgRebirthDeclined = "Rebirth cancelled"
)

// Health check values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "save storage unreachable"
)

// Log messages
const (
	LogMsgPetRequest          = "Pet request handled"
	LogMsgPurchaseFailed      = "Purchase upgrade: service error"
	LogMsgPurchaseSucceeded   = "Purchase upgrade: success"
	LogMsgRebirthFailed       = "Rebirth: service error"
	LogMsgRebirthSucceeded    = "Rebirth: success"
	LogMsgRebirthDeclined     = "Rebirth: declined by player"
	LogMsgPixelModeSet        = "Pixel mode updated"
	LogMsgGetEventsFailed     = "Get events: repository error"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgDecodeRequestFailed = "Failed to decode %s request"
	LogMsgRequestDecoded      = "%s request decoded"
)

// Query parameters
const (
	QueryParamLimit = "limit"
	QueryParamType  = "type"
)
