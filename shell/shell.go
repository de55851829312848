// Package shell implements the interactive command loop on top of a
// store.Store. It reads one command per line, prompts for any arguments and
// writes human-readable results.
//
//	sh, err := shell.New(&cfg, store.New(), os.Stdin, os.Stdout)
//	err = sh.Run(ctx)
//
// Store failures and blank input are reported and the loop continues. Only a
// failure of the input stream itself ends Run with an error.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"

	"github.com/tailored-agentic-units/filecli/observability"
	"github.com/tailored-agentic-units/filecli/store"
)

// Option configures a Shell after config-driven initialization.
type Option func(*Shell)

// WithObserver sets the observer directly; Config.Observers is then ignored.
func WithObserver(o observability.Observer) Option {
	return func(sh *Shell) { sh.observer = o }
}

// WithClock overrides the clock used to compute entry ages.
func WithClock(now func() time.Time) Option {
	return func(sh *Shell) { sh.now = now }
}

// Shell is the command dispatcher. It owns its Store for its whole lifetime.
type Shell struct {
	id       string
	store    *store.Store
	in       *bufio.Reader
	out      io.Writer
	observer observability.Observer
	now      func() time.Time

	prompt        string
	quiet         bool
	previewLength int
}

// New creates a Shell reading commands from in and writing to out.
func New(cfg *Config, s *store.Store, in io.Reader, out io.Writer, opts ...Option) (*Shell, error) {
	sh := &Shell{
		id:            uuid.Must(uuid.NewV7()).String(),
		store:         s,
		in:            bufio.NewReader(in),
		out:           out,
		now:           time.Now,
		prompt:        cfg.Prompt,
		quiet:         cfg.Quiet,
		previewLength: cfg.PreviewLength,
	}

	for _, opt := range opts {
		opt(sh)
	}

	if sh.observer == nil {
		names := cfg.Observers
		if len(names) == 0 {
			names = defaultObservers
		}
		observer, err := observability.ResolveAll(names, nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to create observer")
		}
		sh.observer = observer
	}

	return sh, nil
}

// ID returns the unique identifier of this shell session.
func (sh *Shell) ID() string {
	return sh.id
}

// Run reads and executes commands until quit, end of input, or ctx is done.
// End of input is a normal stop and returns nil.
func (sh *Shell) Run(ctx context.Context) error {
	if !sh.quiet {
		sh.linef("🗂️  Welcome to the In-Memory File Management System!")
		sh.linef("Type 'help' to see available commands.\n")
	}

	sh.emit(ctx, EventSessionStart, observability.LevelInfo, nil)

	executed := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		sh.printf("%s", sh.prompt)
		line, err := sh.readLine()
		if err == io.EOF {
			sh.linef("")
			break
		}
		if err != nil {
			return err
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			sh.report(ctx, err)
			continue
		}

		executed++
		sh.emit(ctx, EventCommand, observability.LevelVerbose, map[string]any{"command": cmd.String()})

		if cmd == CommandQuit {
			break
		}

		err = sh.execute(cmd)
		if err == io.EOF {
			sh.linef("")
			break
		}
		if errors.GetCode(err) == CodeInputFailed {
			return err
		}
		if err != nil {
			sh.report(ctx, err)
		}
	}

	sh.linef("👋 Goodbye!")
	sh.emit(ctx, EventSessionStop, observability.LevelInfo, map[string]any{
		"commands": executed,
		"files":    sh.store.Count(),
	})
	return nil
}

func (sh *Shell) execute(cmd Command) error {
	switch cmd {
	case CommandCreate:
		return sh.create()
	case CommandWrite:
		return sh.write()
	case CommandRead:
		return sh.read()
	case CommandList:
		sh.list()
	case CommandDelete:
		return sh.delete()
	case CommandInfo:
		return sh.info()
	case CommandStats:
		sh.stats()
	case CommandHelp:
		sh.help()
	}
	return nil
}

func (sh *Shell) create() error {
	sh.linef("Creating file...")

	name, err := sh.ask("Enter file name: ")
	if err != nil {
		return err
	}
	content, err := sh.ask("Enter file content: ")
	if err != nil {
		return err
	}

	id, err := sh.store.Create(name, content)
	if err != nil {
		return err
	}
	sh.linef("✅ File '%s' created successfully with ID: %d", name, id)
	return nil
}

func (sh *Shell) write() error {
	sh.linef("Writing content...")

	name, err := sh.ask("Enter file name: ")
	if err != nil {
		return err
	}
	content, err := sh.ask("Enter new content: ")
	if err != nil {
		return err
	}

	if err := sh.store.Write(name, content); err != nil {
		return err
	}
	sh.linef("✅ Content written to '%s' successfully", name)
	return nil
}

func (sh *Shell) read() error {
	sh.linef("Reading file...")

	name, err := sh.ask("Enter file name: ")
	if err != nil {
		return err
	}

	content, err := sh.store.Read(name)
	if err != nil {
		return err
	}
	sh.linef("📄 Content of '%s':", name)
	sh.linef("%s", separator)
	sh.linef("%s", content)
	sh.linef("%s", separator)
	return nil
}

func (sh *Shell) list() {
	sh.linef("Listing files...")

	entries := sh.store.List()
	if len(entries) == 0 {
		sh.linef("📭 No files found.")
		return
	}

	sh.linef("📂 Files in system:")
	for _, e := range entries {
		sh.linef("  %s", e.Summary())
	}
}

func (sh *Shell) delete() error {
	sh.linef("Deleting file...")

	target, err := sh.ask("Enter file name or ID: ")
	if err != nil {
		return err
	}

	if id, ok := parseID(target); ok {
		err = sh.store.DeleteByID(id)
	} else {
		err = sh.store.Delete(target)
	}
	if err != nil {
		return err
	}
	sh.linef("✅ File deleted successfully")
	return nil
}

func (sh *Shell) info() error {
	sh.linef("File information...")

	target, err := sh.ask("Enter file name or ID: ")
	if err != nil {
		return err
	}

	var e store.Entry
	if id, ok := parseID(target); ok {
		e, err = sh.store.GetByID(id)
	} else {
		e, err = sh.store.Get(target)
	}
	if err != nil {
		return err
	}
	sh.linef("📋 File Information:")
	sh.linef("%s", detailed(e, sh.now(), sh.previewLength))
	return nil
}

func (sh *Shell) stats() {
	st := sh.store.Stats()

	sh.linef("📊 System Statistics:")
	sh.linef("  Total files: %d", st.Count)
	sh.linef("  Total size: %d bytes", st.TotalSize)
	if st.Count == 0 {
		return
	}

	sh.linef("  Average file size: %d bytes", st.AverageSize)
	sh.linef("  File types:")
	for _, row := range st.SortedExtensions() {
		sh.linef("    %s: %d files", extensionLabel(row.Extension), row.Count)
	}
}

func (sh *Shell) help() {
	sh.linef("📚 Available Commands:")
	sh.printf("%s", helpTable())
}

// ask prompts for one argument line. Blank answers are rejected.
func (sh *Shell) ask(label string) (string, error) {
	sh.printf("%s", label)

	line, err := sh.readLine()
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", store.InvalidInput("Input cannot be empty")
	}
	return answer, nil
}

// readLine returns the next input line without its terminator. A final line
// lacking a newline is returned before io.EOF.
func (sh *Shell) readLine() (string, error) {
	line, err := sh.in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", io.EOF
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", errors.Wrap(err, CodeInputFailed, "Failed to read input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (sh *Shell) report(ctx context.Context, err error) {
	sh.linef("❌ %s", message(err))
	sh.emit(ctx, EventCommandError, observability.LevelWarning, map[string]any{
		"code":  string(errors.GetCode(err)),
		"error": message(err),
	})
}

func (sh *Shell) emit(ctx context.Context, t observability.EventType, level observability.Level, data map[string]any) {
	if data == nil {
		data = make(map[string]any, 1)
	}
	data["session"] = sh.id

	sh.observer.OnEvent(ctx, observability.Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "shell.Run",
		Data:      data,
	})
}

func (sh *Shell) printf(format string, args ...any) {
	fmt.Fprintf(sh.out, format, args...)
}

func (sh *Shell) linef(format string, args ...any) {
	fmt.Fprintf(sh.out, format+"\n", args...)
}

// parseID interprets s as a file identifier when it is an unsigned 32-bit
// decimal number.
func parseID(s string) (uint32, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}
