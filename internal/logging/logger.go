// Package logging is the structured logging facade used by every txlabel
// component. Implementations are injected through constructors; a nil Logger
// is replaced with OrDefault.
package logging

// Logger is a leveled, field-based logger. Derived loggers carry their fields
// into every entry they write.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger
}

// Field is one structured key/value attached to an entry. Keys should come
// from the Field* constants.
type Field struct {
	Key   string
	Value interface{}
}

// OrDefault returns logger, or a text logger at info level when logger is nil.
func OrDefault(logger Logger) Logger {
	if logger == nil {
		return New(Options{})
	}
	return logger
}
