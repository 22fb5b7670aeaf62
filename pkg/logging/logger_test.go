package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Info().Str("spec_id", "a//1").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["spec_id"] != "a//1" {
		t.Errorf("spec_id field = %v, want a//1", entry["spec_id"])
	}
	if entry["message"] != "hello" {
		t.Errorf("message field = %v, want hello", entry["message"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewLoggerFromConfigLevel(t *testing.T) {
	origLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(origLevel)

	var buf bytes.Buffer
	logger := NewLoggerFromConfig(&Config{Level: "warn", Format: "json", Output: "discard"})
	logger = logger.Output(&buf)

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("info event should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("warn event should pass at warn level")
	}
}

func TestSetDefault(t *testing.T) {
	orig := *Default()
	defer SetDefault(orig)

	var buf bytes.Buffer
	SetDefault(New(&buf))
	Info().Msg("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger did not receive event: %q", buf.String())
	}
}
