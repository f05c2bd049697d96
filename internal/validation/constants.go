package validation

// Error messages
const (
	ErrMsgSchemaValidationFailed = "schema validation failed"
	ErrMsgParseSchemaFmt         = "failed to parse schema %s: %w"
	ErrMsgAddSchemaFmt           = "failed to add schema resource %s: %w"
	ErrMsgCompileSchemaFmt       = "failed to compile schema %s: %w"
	ErrMsgParseDataFmt           = "failed to parse JSON data: %w"
	ErrMsgUnknownSchemaFmt       = "schema %s is not registered"
)
