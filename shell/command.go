package shell

import (
	"strings"

	"github.com/tailored-agentic-units/filecli/store"
)

// Command is a recognized shell command.
type Command int

const (
	CommandCreate Command = iota + 1
	CommandWrite
	CommandRead
	CommandList
	CommandDelete
	CommandInfo
	CommandStats
	CommandHelp
	CommandQuit
)

type commandDef struct {
	command Command
	names   []string // canonical name first
	help    string
}

var commands = []commandDef{
	{CommandCreate, []string{"create", "c"}, "Create a new file"},
	{CommandWrite, []string{"write", "w"}, "Write content to an existing file"},
	{CommandRead, []string{"read", "r"}, "Read file content"},
	{CommandList, []string{"list", "l", "ls"}, "List all files"},
	{CommandDelete, []string{"delete", "d", "del"}, "Delete a file (by name or ID)"},
	{CommandInfo, []string{"info", "i"}, "Show detailed file information"},
	{CommandStats, []string{"stats", "s"}, "Show system statistics"},
	{CommandHelp, []string{"help", "h", "?"}, "Show this help message"},
	{CommandQuit, []string{"quit", "q", "exit"}, "Exit the program"},
}

var lookup = func() map[string]Command {
	m := make(map[string]Command)
	for _, def := range commands {
		for _, name := range def.names {
			m[name] = def.command
		}
	}
	return m
}()

// ParseCommand matches input against the command vocabulary, ignoring case and
// surrounding whitespace.
func ParseCommand(input string) (Command, error) {
	cmd, ok := lookup[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		return 0, store.InvalidInput("Unknown command: " + strings.TrimSpace(input))
	}
	return cmd, nil
}

// String returns the canonical command name.
func (c Command) String() string {
	for _, def := range commands {
		if def.command == c {
			return def.names[0]
		}
	}
	return "unknown"
}
