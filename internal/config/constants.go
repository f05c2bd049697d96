package config

// Environments
const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
	EnvTest    = "test"
)

// Error messages
const (
	ErrMsgParseEnvFmt             = "failed to parse environment: %w"
	ErrMsgInvalidConfigFmt        = "invalid configuration: %w"
	ErrMsgNonPositiveTickInterval = "TICK_INTERVAL must be positive"
	ErrMsgTickFractionRange       = "TICK_FRACTION must be in (0, 1]"
	ErrMsgNonPositiveRateWindow   = "RATE_LIMIT_WINDOW must be positive"
	ErrMsgMissingDatabaseURL      = "DATABASE_URL is required when STORAGE_DRIVER=postgres"
	ErrMsgFieldFmt                = "%s: failed %s check"
)

// Warnings
const (
	WarnMemoryDriver     = "STORAGE_DRIVER=memory: progress will not survive a restart"
	WarnSlowTick         = "TICK_INTERVAL is above one second; passive income will look choppy"
	WarnInsecurePostgres = "DATABASE_URL disables TLS outside dev"
	WarnNoAPIKey         = "API_KEY is empty: the API accepts unauthenticated requests"
	WarnShortRetention   = "EVENT_RETENTION_DAYS below 7 keeps very little journal history"
)

const sslModeDisableFragment = "sslmode=disable"
