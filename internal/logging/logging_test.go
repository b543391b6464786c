package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pablasso/morrow/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetup_FileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morrow.log")

	logger, err := Setup(config.LogConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Debug("hello", "run", "r1")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "hello" {
		t.Errorf("got msg %v, want hello", entry["msg"])
	}
	if entry["run"] != "r1" {
		t.Errorf("got run %v, want r1", entry["run"])
	}
}

func TestSetup_BadFilePath(t *testing.T) {
	_, err := Setup(config.LogConfig{File: filepath.Join(t.TempDir(), "missing", "dir", "morrow.log")})
	if err == nil {
		t.Error("expected error for unwritable log file path")
	}
}
