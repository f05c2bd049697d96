package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 1

	// DefaultMaxConnections suits a single-player process
	DefaultMaxConnections = 4

	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = time.Hour
)

// Migration directories inside the embedded filesystem
const (
	migrationsDirPostgres = "migrations/postgres"
	migrationsDirSQLite   = "migrations/sqlite"
)

// sqliteDriverName is the database/sql driver registered by modernc.org/sqlite
const sqliteDriverName = "sqlite"

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgEmptySQLitePath         = "sqlite path must not be empty"
	ErrMsgFailedToOpenSQLite      = "failed to open sqlite database"
	ErrMsgFailedToApplyPragma     = "failed to apply sqlite pragma"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgSQLiteOpened                    = "Opened sqlite database"
	LogMsgMigrationApplied                = "Applied migration"
)
