package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestConsoleBridge(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("debug", &buf)

	warn, errFn, err := ConsoleBridge(logger)
	if err != nil {
		t.Fatalf("ConsoleBridge() error = %v", err)
	}

	warn("slow frame", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
	if entry["msg"] != "slow frame 42" {
		t.Errorf("msg = %v, want joined arguments", entry["msg"])
	}

	buf.Reset()
	errFn("render failed")

	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if entry["level"] != "error" {
		t.Errorf("level = %v, want error", entry["level"])
	}
}

func TestConsoleBridge_NilLogger(t *testing.T) {
	_, _, err := ConsoleBridge(nil)
	if !errors.Is(err, ErrNilLogger) {
		t.Errorf("error = %v, want ErrNilLogger", err)
	}
}
