// Package observability carries structured events from the store and the
// interactive shell to pluggable observers. Level values follow the
// OpenTelemetry SeverityNumber ranges so events translate directly to slog.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is an event severity in OTel SeverityNumber terms.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG
	LevelInfo    Level = 9  // OTel INFO
	LevelWarning Level = 13 // OTel WARN
	LevelError   Level = 17 // OTel ERROR
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps the level onto the nearest slog.Level.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names an event. Packages declare their own constants, e.g.
// "store.entry.create" or "shell.command".
type EventType string

// Event is a single observation emitted by a subsystem.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// NoOpObserver drops every event.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}

// MultiObserver forwards each event to every wrapped observer in order.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver wraps the non-nil observers.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	kept := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			kept = append(kept, obs)
		}
	}
	return &MultiObserver{observers: kept}
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}
