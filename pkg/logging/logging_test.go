package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("Participant added", "participant_id", "p1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "Participant added" || entry["participant_id"] != "p1" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatText, slog.LevelDebug)

	logger.Debug("Expense added", "amount", 12.5)

	out := buf.String()
	if !strings.Contains(out, "Expense added") || !strings.Contains(out, "amount=12.5") {
		t.Errorf("unexpected output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("expected no color codes when not writing to a terminal")
	}
}

func TestNewFileIsNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log-*.txt")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()

	New(f, FormatText, slog.LevelInfo).Info("Summary computed")

	out, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(out), "Summary computed") {
		t.Errorf("unexpected output: %q", out)
	}
	if strings.Contains(string(out), "\x1b[") {
		t.Error("expected no color codes when writing to a regular file")
	}
}

func TestSetupWithLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)
	t.Setenv("LOG_LEVEL", "error")

	SetupWithLevel(slog.LevelDebug)
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug to be enabled regardless of LOG_LEVEL")
	}

	Setup()
	if slog.Default().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("expected LOG_LEVEL=error to hide warnings")
	}
}
