package log

// Severity defines the severity of a logging message. The values mirror the
// taxonomy this layer reports through to the LogMessage sink: debug, info,
// error, critical, object. "object" is not a distinct severity level but a
// structured value attached to a record at any severity (see Record.Object).
type Severity int32

const (
	// Debug indicates debug-level messages.
	Debug Severity = iota
	// Info indicates minor informational messages that should generally be ignored.
	Info
	// Warning indicates issues that might affect the trace but could be ignored.
	Warning
	// Error indicates a recoverable failure: the call is logged and dropped.
	Error
	// Critical indicates a fatal error: the process aborts.
	Critical
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Critical:
		return "Critical"
	default:
		return "?"
	}
}
