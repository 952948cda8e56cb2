package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerWithWriter(t *testing.T) {
	t.Setenv("DEXSECT_LOG_LEVEL", "debug")
	t.Setenv("DEXSECT_LOG_PREFIX", "")

	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)
	defer logger.Close()

	logger.Debug("lifted method into blocks", "blocks", 3)

	out := buf.String()
	if !strings.Contains(out, "lifted method into blocks") {
		t.Errorf("log output %q missing message", out)
	}
	if !strings.Contains(out, "dexsect") {
		t.Errorf("log output %q missing default prefix", out)
	}
	if !strings.Contains(out, "blocks=3") {
		t.Errorf("log output %q missing structured field", out)
	}
}

func TestLoggerLevelFiltersDebug(t *testing.T) {
	t.Setenv("DEXSECT_LOG_LEVEL", "")

	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)
	defer logger.Close()

	logger.Debug("should be filtered at info level")
	if buf.Len() != 0 {
		t.Errorf("debug message leaked through info level: %q", buf.String())
	}

	logger.Info("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("info message missing from output: %q", buf.String())
	}
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()
	if !strings.HasPrefix(path, "dexsect-") || !strings.HasSuffix(path, "-debug.log") {
		t.Errorf("LogFilePath() = %q, want dexsect-<date>-debug.log", path)
	}
	// stable within a day so the logs command finds the file the
	// logger wrote
	if again := LogFilePath(); again != path {
		t.Errorf("LogFilePath() not stable: %q then %q", path, again)
	}
}

func TestIsDebug(t *testing.T) {
	t.Setenv("DEXSECT_LOG_LEVEL", "debug")
	if !IsDebug() {
		t.Error("IsDebug() = false with DEXSECT_LOG_LEVEL=debug")
	}
	t.Setenv("DEXSECT_LOG_LEVEL", "info")
	if IsDebug() {
		t.Error("IsDebug() = true with DEXSECT_LOG_LEVEL=info")
	}
}
