package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// TestLogger_IncludesSessionFields verifies session fields are present in log output.
func TestLogger_IncludesSessionFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	meta := SessionMeta{
		Component: "chart",
		Target:    "#revenue-panel",
	}

	sessionLogger := logger.WithSession(meta)
	sessionLogger.Info(context.Background(), "session ready")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v\nOutput: %s", err, buf.String())
	}

	if v, ok := logEntry["session.component"].(string); !ok || v != "chart" {
		t.Errorf("expected session.component='chart', got %v", logEntry["session.component"])
	}
	if v, ok := logEntry["session.target"].(string); !ok || v != "#revenue-panel" {
		t.Errorf("expected session.target='#revenue-panel', got %v", logEntry["session.target"])
	}
	if v, ok := logEntry["msg"].(string); !ok || v != "session ready" {
		t.Errorf("expected msg='session ready', got %v", logEntry["msg"])
	}
}

// TestLogger_LevelFiltering verifies entries below the configured level are dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "warn message") {
		t.Errorf("first line = %q, want warn message", lines[0])
	}
	if !strings.Contains(lines[1], "error message") {
		t.Errorf("second line = %q, want error message", lines[1])
	}
}

// TestLogger_Fields verifies ad hoc fields appear in output.
func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "attempt complete",
		Field{Key: "attempt", Value: 2},
		Field{Key: "width", Value: 800.0},
	)

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	if v, ok := logEntry["attempt"].(float64); !ok || v != 2 {
		t.Errorf("expected attempt=2, got %v", logEntry["attempt"])
	}
	if v, ok := logEntry["width"].(float64); !ok || v != 800 {
		t.Errorf("expected width=800, got %v", logEntry["width"])
	}
}

// TestLogger_WithSessionDoesNotMutateParent verifies parent logger attrs stay clean.
func TestLogger_WithSessionDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	_ = logger.WithSession(SessionMeta{Component: "chart"})
	logger.Info(context.Background(), "plain message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if _, ok := logEntry["session.component"]; ok {
		t.Error("parent logger leaked session attributes")
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tc := range cases {
		if got := ParseLogLevel(tc.in); got != tc.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()

	// Must be safe to call and to rebind; nothing observable happens.
	ctx := context.Background()
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x")
	l.Debug(ctx, "x")

	if l.WithSession(SessionMeta{Component: "chart"}) == nil {
		t.Error("WithSession() returned nil")
	}
}
