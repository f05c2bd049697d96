package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Gameplay metric names
const (
	MetricNamePetsTotal              = "garden_pets_total"
	MetricNamePassiveTicksTotal      = "garden_passive_ticks_total"
	MetricNameTicksSkippedTotal      = "garden_ticks_skipped_total"
	MetricNameUpgradesPurchasedTotal = "garden_upgrades_purchased_total"
	MetricNamePurchasesRejectedTotal = "garden_purchases_rejected_total"
	MetricNameUnlocksTotal           = "garden_unlocks_total"
	MetricNameRebirthsTotal          = "garden_rebirths_total"
	MetricNameEndingsTotal           = "garden_endings_total"
	MetricNameCurrency               = "garden_currency"
	MetricNamePeakCurrency           = "garden_peak_currency"
	MetricNameHearts                 = "garden_hearts"
	MetricNameClickRate              = "garden_click_rate"
	MetricNamePassiveRate            = "garden_passive_rate"
)

// Persistence metric names
const (
	MetricNameSavesTotal        = "garden_saves_total"
	MetricNameSaveFailuresTotal = "garden_save_failures_total"
	MetricNameSavesDroppedTotal = "garden_saves_dropped_total"
)

// Stream metric names
const (
	MetricNameStreamClients       = "garden_stream_clients"
	MetricNameStreamEventsDropped = "garden_stream_events_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Gameplay metric help text
const (
	HelpTextPetsTotal              = "Total number of pet actions"
	HelpTextPassiveTicksTotal      = "Total number of passive accrual ticks by outcome"
	HelpTextTicksSkippedTotal      = "Total number of scheduler ticks dropped because the worker queue was full"
	HelpTextUpgradesPurchasedTotal = "Total number of upgrade purchases"
	HelpTextPurchasesRejectedTotal = "Total number of rejected upgrade purchases by reason"
	HelpTextUnlocksTotal           = "Total number of unlock thresholds crossed"
	HelpTextRebirthsTotal          = "Total number of completed rebirths"
	HelpTextEndingsTotal           = "Total number of times the ending was reached"
	HelpTextCurrency               = "Current pets balance"
	HelpTextPeakCurrency           = "Highest pets balance in the current run"
	HelpTextHearts                 = "Current hearts balance"
	HelpTextClickRate              = "Pets gained per pet action"
	HelpTextPassiveRate            = "Pets gained per second"
)

// Persistence metric help text
const (
	HelpTextSavesTotal        = "Total number of snapshots written"
	HelpTextSaveFailuresTotal = "Total number of snapshot writes that failed"
	HelpTextSavesDroppedTotal = "Total number of snapshot writes dropped because the save queue was full"
)

// Stream metric help text
const (
	HelpTextStreamClients       = "Current number of connected SSE and websocket clients"
	HelpTextStreamEventsDropped = "Total number of stream events dropped because a buffer was full"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelUpgrade = "upgrade"
	LabelReason  = "reason"
	LabelUnlock  = "unlock"
	LabelOutcome = "outcome"
	LabelStage   = "stage"
)

// Passive tick outcomes
const (
	OutcomeApplied = "applied"
	OutcomeIdle    = "idle"
)

// Stream drop stages
const (
	StageBroadcast = "broadcast"
	StageClient    = "client"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
