package bootstrap

import (
	"log/slog"

	"github.com/osse101/CozyGarden_Go/internal/config"
	"github.com/osse101/CozyGarden_Go/internal/logger"
)

// SetupLogger installs the process logger from configuration and reports the
// settings that matter when reading a bug report.
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.LogAddSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingGarden,
		"environment", cfg.Environment,
		"version", cfg.Version)

	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"storage_driver", cfg.StorageDriver,
		"tick_interval", cfg.TickInterval,
		"tick_fraction", cfg.TickFraction,
		"workers", cfg.WorkerCount,
		"tuning_path", cfg.TuningPath,
		"locale", cfg.Locale)

	for _, w := range cfg.Warnings() {
		l.Warn(LogMsgConfigWarning, "warning", w)
	}

	return l
}
