package storage

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// FileExtension is appended to the slot key by the file driver
const FileExtension = ".json.zst"

// File permissions
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Error message format strings
const (
	ErrMsgEmptyKey         = "storage key must not be empty"
	ErrMsgEmptyDir         = "storage directory must not be empty"
	ErrMsgCreateDirFmt     = "failed to create storage directory %s: %w"
	ErrMsgReadSlotFmt      = "failed to read slot %s: %w"
	ErrMsgWriteSlotFmt     = "failed to write slot %s: %w"
	ErrMsgDecompressFmt    = "failed to decompress slot %s: %w"
	ErrMsgCompressFmt      = "failed to compress slot %s: %w"
	ErrMsgUnknownDriverFmt = "unknown storage driver %q"
)
