// Package log wraps logrus behind the small structured-logging API used
// throughout the application: package-level helpers for plain messages and
// F/LogWithFields for field-annotated entries.
package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	apperrors "github.com/solarbyte-dev/fuzzyfont/internal/errors"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single key/value annotation on a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures the underlying logrus logger.
type Option func(*logrus.Logger)

// WithOutput directs log output to w.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithJSON switches the logger to JSON output.
func WithJSON() Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// Logger is a leveled, field-carrying logger.
type Logger struct {
	entry *logrus.Entry
}

// NewLogger creates a logger writing human-readable lines to stdout.
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&textFormatter{})
	// Debug suppression is handled per call via SetDebug, so the logrus
	// level stays wide open.
	l.SetLevel(logrus.DebugLevel)
	for _, opt := range opts {
		opt(l)
	}
	return &Logger{entry: logrus.NewEntry(l)}
}

// Configure applies options to the package-level logger.
func Configure(opts ...Option) {
	for _, opt := range opts {
		opt(logger.entry.Logger)
	}
}

// SetDebug toggles debug-level output globally.
func SetDebug(debug bool) {
	isDebug = debug
}

// With returns a logger carrying the given fields in addition to any the
// receiver already holds.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data)}
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Debug logs a message at debug level when debug output is enabled.
func (l *Logger) Debug(msg string) {
	if isDebug {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message at debug level when debug output is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}

// Warn logs a message at warning level.
func (l *Logger) Warn(msg string) {
	l.entry.Warn(msg)
}

// Warnf logs a formatted message at warning level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// LogWithFields returns the package logger annotated with fields.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger annotated with the error message
// and, for application errors, the error kind.
func LogWithError(err error) *Logger {
	if err == nil {
		return logger
	}
	fields := []Field{F("error", err.Error())}
	var kinded interface{ Kind() apperrors.ErrorKind }
	if apperrors.As(err, &kinded) {
		fields = append(fields, F("error_kind", int(kinded.Kind())))
	}
	return logger.With(fields...)
}

// Info logs a message at info level on the package logger.
func Info(msg string) {
	logger.Info(msg)
}

// Infof logs a formatted message at info level on the package logger.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a message at debug level on the package logger.
func Debug(msg string) {
	logger.Debug(msg)
}

// Debugf logs a formatted message at debug level on the package logger.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a message at warning level on the package logger.
func Warn(msg string) {
	logger.Warn(msg)
}

// Warnf logs a formatted message at warning level on the package logger.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs a message at error level on the package logger.
func Error(msg string) {
	logger.Error(msg)
}

// Errorf logs a formatted message at error level on the package logger.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// textFormatter renders "[timestamp] LEVEL: message key=value" lines with
// fields in stable (sorted) order.
type textFormatter struct{}

func (f *textFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s] %s: %s", e.Time.Format("2006-01-02 15:04:05"), levelLabel(e.Level), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelLabel(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}
