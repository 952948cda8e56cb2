// Package logging provides structured logging with optional file output.
// Configuration comes from DEXSECT_* environment variables.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// LoggerCloser wraps a logger and provides a Close method for cleanup.
type LoggerCloser struct {
	*log.Logger
	closer io.Closer
}

// Close closes the underlying writer if it is closeable.
func (lc *LoggerCloser) Close() error {
	if lc.closer != nil {
		return lc.closer.Close()
	}
	return nil
}

// NewLoggerWithWriter creates a new logger writing to w.
func NewLoggerWithWriter(w io.Writer) *LoggerCloser {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	switch os.Getenv("DEXSECT_LOG_LEVEL") {
	case "debug":
		lg.SetLevel(log.DebugLevel)
	case "warn":
		lg.SetLevel(log.WarnLevel)
	case "error":
		lg.SetLevel(log.ErrorLevel)
	default:
		lg.SetLevel(log.InfoLevel)
	}

	prefix := os.Getenv("DEXSECT_LOG_PREFIX")
	if prefix == "" {
		prefix = "dexsect "
	}

	var closer io.Closer
	if c, ok := w.(io.Closer); ok {
		closer = c
	}

	return &LoggerCloser{
		Logger: lg.WithPrefix(prefix),
		closer: closer,
	}
}

// NewLogger creates a new logger based on environment variables.
// DEXSECT_LOG_LEVEL: debug, info, warn, error (default: info)
// DEXSECT_LOG_PREFIX: prefix for log messages (default: "dexsect ")
// DEXSECT_LOG_TO_FILE: when set to "1", logs to a timestamped file instead of stderr
func NewLogger() *LoggerCloser {
	output := io.Writer(os.Stderr)

	if os.Getenv("DEXSECT_LOG_TO_FILE") == "1" {
		f, err := os.OpenFile(LogFilePath(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err == nil {
			output = f
		}
		// fall back to stderr when the file cannot be created
	}

	return NewLoggerWithWriter(output)
}

// LogFilePath returns the timestamped debug log file name used when
// file logging is enabled. The "logs" command follows the same path.
func LogFilePath() string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("dexsect-%s-debug.log", timestamp)
}

// IsDebug returns true if debug logging is enabled.
func IsDebug() bool {
	return os.Getenv("DEXSECT_LOG_LEVEL") == "debug"
}
