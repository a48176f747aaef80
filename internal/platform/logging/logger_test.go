package logging

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// captureLogOutput captures the entry emitted by logFn and decodes it.
func captureLogOutput(t *testing.T, logFn func(*zap.Logger)) map[string]any {
	t.Helper()

	resetLoggerForTest(t)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() { _ = r.Close() }()

	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	logger := Logger()
	logFn(logger)
	_ = logger.Sync()

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read log output: %v", err)
	}

	line := strings.TrimSpace(string(data))
	if line == "" {
		return nil
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to unmarshal log JSON %q: %v", line, err)
	}
	return payload
}

// resetLoggerForTest clears the singleton so the next Logger call rebinds to os.Stdout.
func resetLoggerForTest(t *testing.T) {
	t.Helper()
	loggerOnce = sync.Once{}
	baseLogger = nil
	loggerErr = nil
	level.SetLevel(zapcore.InfoLevel)
	t.Cleanup(func() {
		loggerOnce = sync.Once{}
		baseLogger = nil
		level.SetLevel(zapcore.InfoLevel)
	})
}

func TestLoggerStructuredOutput(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("GET /health", zap.String("component", "probe"))
	})

	if got := payload["severity"]; got != "INFO" {
		t.Fatalf("expected severity INFO, got %v", got)
	}
	if got := payload["message"]; got != "GET /health" {
		t.Fatalf("expected message 'GET /health', got %v", got)
	}
	if got := payload["component"]; got != "probe" {
		t.Fatalf("expected component field, got %v", got)
	}
	if _, ok := payload["caller"]; !ok {
		t.Fatalf("expected caller field, got %v", payload)
	}
	if _, ok := payload["level"]; ok {
		t.Fatalf("expected no level key, got %v", payload)
	}
}

func TestLoggerTimestampFormat(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("tick")
	})

	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("expected string timestamp, got %v", payload["timestamp"])
	}
	if !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp, got %s", ts)
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000000Z", ts); err != nil {
		t.Fatalf("timestamp %q does not have microsecond precision: %v", ts, err)
	}
}

func TestSetLevelFiltersEntries(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		if err := SetLevel("warn"); err != nil {
			t.Fatalf("SetLevel: %v", err)
		}
		l.Info("dropped")
	})
	if payload != nil {
		t.Fatalf("expected info entry to be filtered at warn level, got %v", payload)
	}

	payload = captureLogOutput(t, func(l *zap.Logger) {
		if err := SetLevel("debug"); err != nil {
			t.Fatalf("SetLevel: %v", err)
		}
		l.Debug("kept")
	})
	if got := payload["severity"]; got != "DEBUG" {
		t.Fatalf("expected DEBUG entry after SetLevel(debug), got %v", payload)
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSeverityMapping(t *testing.T) {
	tests := []struct {
		level zapcore.Level
		want  string
	}{
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.InfoLevel, "INFO"},
		{zapcore.WarnLevel, "WARNING"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DPanicLevel, "CRITICAL"},
		{zapcore.PanicLevel, "ALERT"},
		{zapcore.FatalLevel, "EMERGENCY"},
		{zapcore.Level(42), "DEFAULT"},
	}

	for _, tt := range tests {
		if got := severity(tt.level); got != tt.want {
			t.Errorf("severity(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestErrAndSync(t *testing.T) {
	resetLoggerForTest(t)
	if err := Err(); err != nil {
		t.Fatalf("expected nil init error, got %v", err)
	}
	if a, b := Logger(), Logger(); a != b {
		t.Fatal("expected Logger to return a singleton")
	}
	// Sync on stdout can return EINVAL on some platforms; it must not panic.
	_ = Sync()
}
