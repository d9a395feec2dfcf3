package event

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// Log/error message formats
const (
	LogMsgHandlerErrorFormat = "%d handler error(s) for event %s: %v"
)
