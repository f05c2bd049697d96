package save

// DefaultSlotKey is the storage slot the snapshot lives in
const DefaultSlotKey = "inciCozyCatGardenSave"

// Snapshot field names. The legacy* names are read for older saves only.
const (
	fieldCurrency         = "currency"
	fieldPeakCurrency     = "peakCurrency"
	fieldClickRate        = "clickRate"
	fieldPassiveRate      = "passiveRate"
	fieldPrestigeCurrency = "prestigeCurrency"
	fieldPrestigeCount    = "prestigeCount"
	fieldUpgradeLevels    = "upgradeLevels"
	fieldUnlockFlags      = "unlockFlags"
	fieldEndingReached    = "endingReached"
	fieldPixelMode        = "pixelMode"
	fieldZezeUnlocked     = "zezeUnlocked"
	fieldBMOUnlocked      = "bmoUnlocked"

	legacyFieldTotalPets     = "totalPets"
	legacyFieldBestPetsRun   = "bestPetsRun"
	legacyFieldPetsPerClick  = "petsPerClick"
	legacyFieldPetsPerSecond = "petsPerSecond"
	legacyFieldHearts        = "hearts"
	legacyFieldRebirths      = "rebirths"
)

// Error message format strings
const (
	ErrMsgEncodeSnapshotFmt = "failed to encode snapshot: %w"
	ErrMsgWriteSnapshotFmt  = "failed to write snapshot to slot %s: %w"
)

// Log messages
const (
	LogMsgNoSnapshot         = "No saved garden found, starting fresh"
	LogMsgSnapshotLoaded     = "Loaded saved garden"
	LogMsgSnapshotReadFailed = "Failed to read saved garden, starting fresh"
	LogMsgSnapshotMalformed  = "Saved garden is malformed, starting fresh"
	LogMsgLevelsDiscarded    = "Saved upgrade levels do not match the catalog, resetting them"
	LogMsgUnknownUnlocks     = "Saved garden names unknown unlocks, ignoring them"
	LogMsgSaveFailed         = "Failed to save garden"
	LogMsgSaveDropped        = "Save queue full, snapshot deferred to next save"
	LogMsgSaved              = "Garden saved"
)
