package logging

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "INPUTSHOWCASE_LOG_LEVEL"

// LogFileEnvVar is the environment variable naming the log destination.
// The TUI owns stdout, so logs go to stderr unless a file is given.
const LogFileEnvVar = "INPUTSHOWCASE_LOG_FILE"

// maxPreview caps how much user text ends up in a single log field.
const maxPreview = 64

// Initialize creates a new logger with the specified level writing to stderr
// or to INPUTSHOWCASE_LOG_FILE when set.
// If level is empty, it checks INPUTSHOWCASE_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeWithOutput(level, "")
}

// InitializeWithOutput is Initialize with an explicit output path.
// An empty path falls back to INPUTSHOWCASE_LOG_FILE, then stderr.
func InitializeWithOutput(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}
	if path == "" {
		path = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if path == "stderr" || path == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogFieldEdit logs a change to an input field.
// Only lengths are logged at debug level; the text itself is not.
func LogFieldEdit(screen, field, before, after string) {
	if !GetLogger().Core().Enabled(zapcore.DebugLevel) || before == after {
		return
	}
	Debug("Field edited",
		zap.String("screen", screen),
		zap.String("field", field),
		zap.Int("before_len", utf8.RuneCountInString(before)),
		zap.Int("after_len", utf8.RuneCountInString(after)),
	)
}

// LogSuggestion logs a suggestion lookup for the word being typed
func LogSuggestion(kind, word string, matches int) {
	Debug("Suggestions computed",
		zap.String("kind", kind),
		zap.String("word", preview(word)),
		zap.Int("matches", matches),
	)
}

// LogValidation logs the outcome of a form submit gate
func LogValidation(form string, errs []error) {
	if len(errs) == 0 {
		Info("Form valid", zap.String("form", form))
		return
	}

	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	Info("Form invalid",
		zap.String("form", form),
		zap.Int("error_count", len(errs)),
		zap.Strings("errors", messages),
	)
}

// LogScreenChange logs navigation between screens
func LogScreenChange(from, to string) {
	Debug("Screen change",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// preview truncates s to maxPreview runes for logging.
func preview(s string) string {
	if utf8.RuneCountInString(s) <= maxPreview {
		return s
	}
	return string([]rune(s)[:maxPreview]) + "..."
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
