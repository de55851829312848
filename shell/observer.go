package shell

import "github.com/tailored-agentic-units/filecli/observability"

// Shell event types.
const (
	EventSessionStart observability.EventType = "shell.session.start"
	EventSessionStop  observability.EventType = "shell.session.stop"
	EventCommand      observability.EventType = "shell.command"
	EventCommandError observability.EventType = "shell.command.error"
)
