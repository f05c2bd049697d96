package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port int `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`

	// Logging
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN ERROR"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=json text"`
	LogAddSource bool   `env:"LOG_ADD_SOURCE" envDefault:"false"`
	Environment  string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging prod test"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"cozy-garden" validate:"required"`
	Version      string `env:"VERSION" envDefault:"dev"`

	// Storage
	StorageDriver     string        `env:"STORAGE_DRIVER" envDefault:"file" validate:"oneof=memory file sqlite postgres"`
	SaveDir           string        `env:"SAVE_DIR" envDefault:"data"`
	SQLitePath        string        `env:"SQLITE_PATH" envDefault:"data/garden.db"`
	DatabaseURL       string        `env:"DATABASE_URL"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"4" validate:"min=1"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	SaveKey           string        `env:"SAVE_KEY" envDefault:"inciCozyCatGardenSave" validate:"required"`
	SaveQueueSize     int           `env:"SAVE_QUEUE_SIZE" envDefault:"64" validate:"min=1"`

	// Engine
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"100ms"`
	TickFraction float64       `env:"TICK_FRACTION" envDefault:"0.1"`
	WorkerCount  int           `env:"WORKER_COUNT" envDefault:"2" validate:"min=1"`
	TuningPath   string        `env:"TUNING_PATH"`
	Locale       string        `env:"LOCALE" envDefault:"en"`

	// Journal
	EventRetentionDays   int           `env:"EVENT_RETENTION_DAYS" envDefault:"30" validate:"min=1"`
	EventCleanupInterval time.Duration `env:"EVENT_CLEANUP_INTERVAL" envDefault:"24h"`

	// HTTP
	APIKey            string        `env:"API_KEY"`
	TrustedProxies    []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"6000" validate:"min=1"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	MaxRequestBytes   int64         `env:"MAX_REQUEST_BYTES" envDefault:"65536" validate:"min=1"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnvFmt, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidConfigFmt, err)
	}

	return cfg, nil
}

// Validate checks field ranges and cross-field rules
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf(ErrMsgFieldFmt, fe.Field(), fe.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	if c.TickInterval <= 0 {
		return errors.New(ErrMsgNonPositiveTickInterval)
	}
	if c.TickFraction <= 0 || c.TickFraction > 1 {
		return errors.New(ErrMsgTickFractionRange)
	}
	if c.RateLimitWindow <= 0 {
		return errors.New(ErrMsgNonPositiveRateWindow)
	}
	if c.StorageDriver == "postgres" && strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New(ErrMsgMissingDatabaseURL)
	}
	return nil
}

// Warnings lists settings that are valid but probably not what was intended
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StorageDriver == "memory" {
		warnings = append(warnings, WarnMemoryDriver)
	}
	if c.TickInterval > time.Second {
		warnings = append(warnings, WarnSlowTick)
	}
	if c.StorageDriver == "postgres" && c.Environment != EnvDev &&
		strings.Contains(c.DatabaseURL, sslModeDisableFragment) {
		warnings = append(warnings, WarnInsecurePostgres)
	}
	if c.APIKey == "" && c.Environment != EnvDev && c.Environment != EnvTest {
		warnings = append(warnings, WarnNoAPIKey)
	}
	if c.EventRetentionDays < 7 {
		warnings = append(warnings, WarnShortRetention)
	}

	return warnings
}
