package log

// Logger receives journal events. Log is called on the goroutine that
// accessed the tree, so implementations must be safe for concurrent use and
// must not block for long.
type Logger interface {
	Log(event Event)
}

// LoggerFunc adapts an ordinary function to a Logger.
type LoggerFunc func(event Event)

// Log calls f(event).
func (f LoggerFunc) Log(event Event) { f(event) }

// NoopLogger drops every event. The zero value is ready to use.
type NoopLogger struct{}

// Log does nothing.
func (NoopLogger) Log(Event) {}

// OrNoop returns l, or NoopLogger when l is nil. Components store the result
// so they never check for a missing journal.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}

var (
	_ Logger = NoopLogger{}
	_ Logger = LoggerFunc(nil)
)
