package bootstrap

// WorkerScope tags log lines written by background save and tick jobs.
const WorkerScope = "garden-worker"

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGarden      = "Starting cozy garden"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgCatalogLoaded       = "Upgrade catalog loaded"
	LogMsgStorageOpened       = "Save storage opened"
	LogMsgGardenLoaded        = "Garden loaded"
	LogMsgJobsScheduled       = "Background jobs scheduled"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgStreamSubscriberRegistered = "Notification stream subscriber registered"
)

// Error messages
const (
	ErrMsgFailedLoadCatalog          = "failed to load upgrade catalog"
	ErrMsgFailedOpenStorage          = "failed to open save storage"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
	ErrMsgUnknownDriverFmt           = "unknown storage driver %q"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingScheduler    = "Stopping scheduler..."
	LogMsgDrainingWorkers      = "Draining worker pool..."
	LogMsgFinalSaveFailed      = "Final save failed"
	LogMsgFinalSaveWritten     = "Final save written"
	LogMsgStoreCloseFailed     = "Save storage close failed"
	LogMsgServerStopped        = "Server stopped"
)
