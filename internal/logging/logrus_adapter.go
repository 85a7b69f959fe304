package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options configures a logrus-backed logger.
type Options struct {
	// Level is one of debug, info, warn or error. Anything else means info.
	Level string
	// Format is "json" or "text".
	Format string
	// Output defaults to stderr so that command results on stdout stay clean.
	Output io.Writer
}

// LogrusAdapter implements Logger on top of a logrus entry.
type LogrusAdapter struct {
	entry *logrus.Entry
}

// New builds a logrus-backed logger from opts.
func New(opts Options) *LogrusAdapter {
	base := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	if opts.Format == "json" {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if opts.Output != nil {
		base.SetOutput(opts.Output)
	}

	return FromLogrus(base)
}

// NewLogrusAdapter returns New with the given level and format.
func NewLogrusAdapter(level, format string) Logger {
	return New(Options{Level: level, Format: format})
}

// FromLogrus wraps an existing logrus logger. A nil logger gets a fresh one.
func FromLogrus(base *logrus.Logger) *LogrusAdapter {
	if base == nil {
		base = logrus.New()
	}
	return &LogrusAdapter{entry: logrus.NewEntry(base)}
}

// Level returns the active level name.
func (l *LogrusAdapter) Level() string {
	return l.entry.Logger.GetLevel().String()
}

// SetOutput redirects every logger derived from the same base.
func (l *LogrusAdapter) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

func (l *LogrusAdapter) Debug(msg string, fields ...Field) { l.log(logrus.DebugLevel, msg, fields) }
func (l *LogrusAdapter) Info(msg string, fields ...Field)  { l.log(logrus.InfoLevel, msg, fields) }
func (l *LogrusAdapter) Warn(msg string, fields ...Field)  { l.log(logrus.WarnLevel, msg, fields) }
func (l *LogrusAdapter) Error(msg string, fields ...Field) { l.log(logrus.ErrorLevel, msg, fields) }

func (l *LogrusAdapter) WithError(err error) Logger {
	return &LogrusAdapter{entry: l.entry.WithError(err)}
}

func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return &LogrusAdapter{entry: l.entry.WithField(key, value)}
}

func (l *LogrusAdapter) WithFields(fields ...Field) Logger {
	return &LogrusAdapter{entry: l.entry.WithFields(toLogrusFields(fields))}
}

func (l *LogrusAdapter) log(level logrus.Level, msg string, fields []Field) {
	if !l.entry.Logger.IsLevelEnabled(level) {
		return
	}
	l.entry.WithFields(toLogrusFields(fields)).Log(level, msg)
}

func toLogrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
