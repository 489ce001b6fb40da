package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCaptureHandler(buf *bytes.Buffer) slog.Handler {
	return slog.NewTextHandler(buf, &slog.HandlerOptions{AddSource: false})
}

func TestConditionalSourceHandler_SourcePerLevel(t *testing.T) {
	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		wantSource       bool
	}{
		{"info stays compact", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn carries source", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error carries source", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"debug stays compact", slog.LevelDebug, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"info carries source when configured", slog.LevelInfo, []slog.Level{slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := NewConditionalSourceHandler(newCaptureHandler(&buf), tt.showSourceLevels...)

			slog.New(handler).Log(context.Background(), tt.level, "triage job finished")

			assert.Equal(t, tt.wantSource, strings.Contains(buf.String(), "source="))
		})
	}
}

func TestConditionalSourceHandler_PreservesAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewConditionalSourceHandler(newCaptureHandler(&buf), slog.LevelError)

	slog.New(handler).With("tenant_id", "7").Info("ticket submitted")

	output := buf.String()
	assert.NotContains(t, output, "source=")
	assert.Contains(t, output, "tenant_id=7")
}

func TestConditionalSourceHandler_PreservesGroups(t *testing.T) {
	var buf bytes.Buffer
	handler := NewConditionalSourceHandler(newCaptureHandler(&buf), slog.LevelError)

	slog.New(handler).WithGroup("request").Info("handled", "path", "/public/tickets")

	output := buf.String()
	assert.NotContains(t, output, "source=")
	assert.Contains(t, output, "path")
}

func TestConditionalSourceHandler_EnabledDelegates(t *testing.T) {
	var buf bytes.Buffer
	baseHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler := NewConditionalSourceHandler(baseHandler, slog.LevelError)

	ctx := context.Background()
	assert.True(t, handler.Enabled(ctx, slog.LevelInfo))
	assert.True(t, handler.Enabled(ctx, slog.LevelError))
	assert.False(t, handler.Enabled(ctx, slog.LevelDebug))
}
