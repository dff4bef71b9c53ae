package util

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"rotki-settings/internal/common"
)

const redacted = "<redacted>"

// identifyingKeys are field names whose values are hidden when logs are
// anonymized.
var identifyingKeys = map[string]bool{
	"address":      true,
	"endpoint":     true,
	"rpc_endpoint": true,
	"account":      true,
	"peer":         true,
}

// Logger provides utility functions for consistent logging.
type Logger struct {
	anonymize bool
}

// NewLogger creates a new Logger instance. With anonymize set, values of
// identifying fields are replaced before they reach the log.
func NewLogger(anonymize bool) *Logger {
	return &Logger{anonymize: anonymize}
}

func (l *Logger) Anonymized() bool {
	return l.anonymize
}

// Error logs an error with the specified error code, message, and optional fields.
func (l *Logger) Error(err error, errorCode common.ErrorCode, errorMsg common.ErrorMessage, msg string, fields ...interface{}) {
	event := log.Error().
		Err(err).
		Str("error_code", errorCode.String()).
		Str("error_message", errorMsg.String())

	l.withFields(event, fields).Msg(msg)
}

// Warn logs a warning with the specified error code, message, and optional fields.
func (l *Logger) Warn(errorCode common.ErrorCode, errorMsg common.ErrorMessage, msg string, fields ...interface{}) {
	event := log.Warn().
		Str("error_code", errorCode.String()).
		Str("error_message", errorMsg.String())

	l.withFields(event, fields).Msg(msg)
}

// Info logs an info message with optional fields.
func (l *Logger) Info(msg string, fields ...interface{}) {
	l.withFields(log.Info(), fields).Msg(msg)
}

// Debug logs a debug message with optional fields.
func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.withFields(log.Debug(), fields).Msg(msg)
}

// withFields adds key-value pairs; a trailing key without a value is dropped.
func (l *Logger) withFields(event *zerolog.Event, fields []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		if l.anonymize && identifyingKeys[key] {
			event = event.Str(key, redacted)
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	return event
}

// SetLevel maps a config log level onto zerolog's global level.
func SetLevel(level string) bool {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		return false
	}
	return true
}
