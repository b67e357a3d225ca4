// Package logging provides structured logging for inputshowcase.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used by the CLI and the TUI. Logging is silent unless a level is
// given through --log-level or INPUTSHOWCASE_LOG_LEVEL.
//
// # Log Levels
//
//   - Debug: field edits, suggestion lookups, screen changes
//   - Info: form submissions, clipboard use, config writes
//   - Warn: non-fatal issues (clipboard unavailable, config fallback)
//   - Error: failures surfaced to the user
//
// # Output
//
// The TUI owns stdout, so logs are written to stderr by default. Set
// --log-file or INPUTSHOWCASE_LOG_FILE to send them to a file instead:
//
//	INPUTSHOWCASE_LOG_LEVEL=debug INPUTSHOWCASE_LOG_FILE=/tmp/showcase.log inputshowcase
//
// # Privacy
//
// LogFieldEdit records lengths only. Typed text is never logged in full;
// suggestion words are truncated.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
