package catalog

// Error message format strings
const (
	ErrMsgNegativeLevelFmt      = "%w: level %d must not be negative"
	ErrMsgDuplicateIDFmt        = "%w: duplicate upgrade id %q"
	ErrMsgEmptyIDFmt            = "%w: upgrade at index %d has no id"
	ErrMsgUnknownEffectFmt      = "%w: upgrade %q has unknown effect %q"
	ErrMsgNonPositiveMagnitude  = "%w: upgrade %q magnitude must be positive"
	ErrMsgNonPositiveBaseCost   = "%w: upgrade %q base cost must be positive"
	ErrMsgGrowthNotAboveOneFmt  = "%w: upgrade %q growth factor must be greater than 1"
	ErrMsgEmptyCatalog          = "%w: catalog has no upgrades"
	ErrMsgReadTuningFailedFmt   = "failed to read tuning file %s: %w"
	ErrMsgParseTuningFailedFmt  = "failed to parse tuning file %s: %w"
	ErrMsgTuningSchemaFailedFmt = "tuning does not match schema %s: %w"
	ErrMsgCompileSchemaFailed   = "failed to compile tuning schema: %w"
)

// Log messages
const (
	LogMsgTuningLoaded = "Upgrade catalog loaded from tuning file"
)

// tuningSchemaURL is the resource name the embedded schema is registered under.
const tuningSchemaURL = "catalog.schema.json"
