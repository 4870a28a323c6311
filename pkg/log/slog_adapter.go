package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see runtime calls in the console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter logging at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger. Failed calls and errors are
// raised to Warn.
func (a *SlogAdapter) Log(event Event) {
	level := a.level
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Call != nil:
		attrs = append(attrs,
			slog.String("fn", event.Call.Function),
			slog.String("result", event.Call.ResultName),
		)
		for k, v := range event.Call.Args {
			attrs = append(attrs, slog.String(k, v))
		}
		if event.Call.Duration != nil {
			attrs = append(attrs, slog.Duration("duration", *event.Call.Duration))
		}
		if event.Call.Failed() && level < slog.LevelWarn {
			level = slog.LevelWarn
		}
	case event.Snapshot != nil:
		attrs = append(attrs,
			slog.Float64("time", event.Snapshot.Input.TimeInSeconds),
			slog.String("left", event.Snapshot.ControllerTypes[0]),
			slog.String("right", event.Snapshot.ControllerTypes[1]),
			slog.Int("trackers", len(event.Snapshot.TrackerSerials)),
		)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Binding != nil:
		attrs = append(attrs,
			slog.String("action", event.Binding.Action),
			slog.String("binding", event.Binding.BindingPath),
			slog.String("real", event.Binding.RealPath),
		)
		if event.Binding.Field != "" {
			attrs = append(attrs, slog.String("field", event.Binding.Field))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
			slog.Bool("fatal", event.Error.Fatal),
		)
		if event.Error.Code != nil {
			attrs = append(attrs, slog.Int("error_code", *event.Error.Code))
		}
		level = slog.LevelError
	}

	a.logger.LogAttrs(context.Background(), level, "xr", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
