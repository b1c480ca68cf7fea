package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersAreNilSafe(t *testing.T) {
	Debug(nil, "debug")
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "fetch failed", errors.New("boom"), "provider", "mlb")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "provider=mlb") {
		t.Fatalf("expected error and provider fields, got %q", out)
	}
}

func TestHelpersRespectLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	Debug(logger, "dropped debug")
	Info(logger, "dropped info")
	Warn(logger, "cache stale", FieldBucket, "sports-hub-v1")
	Error(logger, "no error value", nil)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("expected debug and info suppressed, got %q", out)
	}
	if !strings.Contains(out, "bucket=sports-hub-v1") || !strings.Contains(out, "no error value") {
		t.Fatalf("expected warn and error records, got %q", out)
	}
	if strings.Contains(out, "error=") {
		t.Fatalf("expected no error field for nil error, got %q", out)
	}
}
