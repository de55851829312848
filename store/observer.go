package store

import "github.com/tailored-agentic-units/filecli/observability"

// Events emitted after each successful mutation.
const (
	EventCreate observability.EventType = "store.entry.create"
	EventWrite  observability.EventType = "store.entry.write"
	EventDelete observability.EventType = "store.entry.delete"
)
