package eventlog

// Defaults
const (
	// DefaultRecentLimit is used when a caller asks for a non-positive limit
	DefaultRecentLimit = 50

	// MaxRecentLimit caps a single journal read
	MaxRecentLimit = 500
)

// Log messages - service events
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded, skipping log"
	LogMsgFailedToLogEvent         = "Failed to log event to journal"
	LogMsgEventLogged              = "Event logged to journal"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

// Metadata keys
const (
	MetadataKeyVersion = "version"
)
