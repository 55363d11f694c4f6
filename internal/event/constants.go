package event

// EventSchemaVersion is the current version of the event schema
const EventSchemaVersion = "1.0"

// Log Messages
const (
	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
)
