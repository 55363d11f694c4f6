package logger

// Log Level String Values
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Log Attribute Keys
const (
	AttrKeyRunID     = "run_id"
	AttrKeyRequestID = "request_id"
)
