package log

// MultiLogger delivers each event to several journals in order, typically a
// SlogAdapter for the console and a FileLogger on disk.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger combines loggers. Nil and NoopLogger entries are dropped and
// nested MultiLoggers are flattened, so Len reports the real sinks.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	m.add(loggers)
	return m
}

func (m *MultiLogger) add(loggers []Logger) {
	for _, l := range loggers {
		switch v := l.(type) {
		case nil, NoopLogger:
		case *MultiLogger:
			if v != nil {
				m.add(v.loggers)
			}
		default:
			m.loggers = append(m.loggers, l)
		}
	}
}

// Len returns the number of journals events are delivered to.
func (m *MultiLogger) Len() int {
	return len(m.loggers)
}

// Log delivers event to every journal.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
