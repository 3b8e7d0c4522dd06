package contextutil

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFanoutHandler_DuplicatesRecords(t *testing.T) {
	var file, console bytes.Buffer
	logger := slog.New(NewFanoutHandler(
		slog.NewTextHandler(&file, nil),
		slog.NewTextHandler(&console, nil),
	))

	logger.Info("processing paper", "title", "Some Paper")

	for name, buf := range map[string]*bytes.Buffer{"file": &file, "console": &console} {
		if !strings.Contains(buf.String(), "processing paper") || !strings.Contains(buf.String(), "Some Paper") {
			t.Errorf("%s output missing record: %q", name, buf.String())
		}
	}
}

func TestFanoutHandler_RespectsPerHandlerLevels(t *testing.T) {
	var verbose, errorsOnly bytes.Buffer
	logger := slog.New(NewFanoutHandler(
		slog.NewTextHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorsOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	))

	logger.Debug("page extracted")
	logger.Error("upsert failed")

	if !strings.Contains(verbose.String(), "page extracted") {
		t.Error("debug handler missed the debug record")
	}
	if strings.Contains(errorsOnly.String(), "page extracted") {
		t.Error("error-level handler received a debug record")
	}
	if !strings.Contains(errorsOnly.String(), "upsert failed") {
		t.Error("error-level handler missed the error record")
	}
}

func TestFanoutHandler_WithAttrsReachesAllHandlers(t *testing.T) {
	var a, b bytes.Buffer
	logger := slog.New(NewFanoutHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewTextHandler(&b, nil),
	)).With("paper", "Attention")

	logger.Info("done")

	for name, buf := range map[string]*bytes.Buffer{"a": &a, "b": &b} {
		if !strings.Contains(buf.String(), "paper=Attention") {
			t.Errorf("%s output missing attached attr: %q", name, buf.String())
		}
	}
}

func TestFanoutHandler_EnabledWhenAnyHandlerIs(t *testing.T) {
	h := NewFanoutHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled(info) = false, one handler accepts info")
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(debug) = true, no handler accepts debug")
	}
}
