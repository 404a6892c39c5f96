package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: JSONFormat, Output: &buf})

	logger.Info("hello", "key", "value")

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "hello" || record["key"] != "value" {
		t.Errorf("record = %v", record)
	}
}

func TestNewLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: TextFormat, Output: &buf})

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info record should be filtered at warn level: %q", buf.String())
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn record should be emitted")
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	logger.Error("nothing happens")
	if logger == nil {
		t.Fatal("NewDiscard should return a logger")
	}
}
