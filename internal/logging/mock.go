package logging

// MockLogger captures log entries for verification in tests. Loggers
// derived via WithError/WithField/WithFields record into the same shared
// entry list, so a test holding the root mock observes logs made through
// chained loggers.
type MockLogger struct {
	entries       *[]LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) store() *[]LogEntry {
	if m.entries == nil {
		m.entries = &[]LogEntry{}
	}
	return m.entries
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field(nil), m.pendingFields...), fields...)
	entries := m.store()
	*entries = append(*entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Entries returns every entry recorded through this logger or any logger
// derived from it.
func (m *MockLogger) Entries() []LogEntry {
	if m.entries == nil {
		return nil
	}
	return *m.entries
}

// WithError returns a derived logger with an error field attached.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		entries:       m.store(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a derived logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a derived logger with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	allFields := append(append([]Field(nil), m.pendingFields...), fields...)
	return &MockLogger{
		entries:       m.store(),
		pendingError:  m.pendingError,
		pendingFields: allFields,
	}
}

// HasEntry checks whether an entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.Entries() {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}
