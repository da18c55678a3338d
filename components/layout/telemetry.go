package layout

import (
	"context"
	"log/slog"
)

// Telemetry records sizing events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// LogTelemetry writes telemetry events through a structured logger.
type LogTelemetry struct {
	Logger *slog.Logger
	Level  slog.Level
}

// NewLogTelemetry wraps logger; a nil logger uses slog.Default().
func NewLogTelemetry(logger *slog.Logger) *LogTelemetry {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTelemetry{Logger: logger, Level: slog.LevelDebug}
}

// Record emits the event with its payload as attributes.
func (t *LogTelemetry) Record(ctx context.Context, event string, payload map[string]any) {
	if t == nil || t.Logger == nil {
		return
	}
	attrs := make([]slog.Attr, 0, len(payload))
	for key, value := range payload {
		attrs = append(attrs, slog.Any(key, value))
	}
	t.Logger.LogAttrs(ctx, t.Level, event, attrs...)
}
