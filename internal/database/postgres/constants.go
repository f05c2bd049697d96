package postgres

// Error Messages - Save Slots
const (
	ErrMsgFailedToReadSlot  = "failed to read save slot"
	ErrMsgFailedToWriteSlot = "failed to write save slot"
	ErrMsgEmptySlotKey      = "save slot key must not be empty"
)

// Error Messages - Event Log
const (
	ErrMsgFailedToMarshalPayload  = "failed to marshal event payload"
	ErrMsgFailedToMarshalMetadata = "failed to marshal event metadata"
	ErrMsgFailedToInsertEvent     = "failed to insert event"
	ErrMsgFailedToQueryEvents     = "failed to query events"
	ErrMsgFailedToScanEvent       = "failed to scan event"
	ErrMsgFailedToCleanupEvents   = "failed to clean up events"
)
