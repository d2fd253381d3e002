package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"bogus", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Debug("hidden")
	log.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("warn message missing, got %q", out)
	}
}
