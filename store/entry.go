package store

import (
	"fmt"
	"strings"
	"time"
)

// NoExtension is the Stats key for entries whose name carries no extension.
const NoExtension = "no extension"

// Entry is a read-only view of a stored file. Values returned by the Store are
// copies; changing them has no effect on the Store.
type Entry struct {
	ID        uint32
	Name      string
	Content   string
	Size      int // len(Content) in bytes
	CreatedAt time.Time
}

// Summary renders the one-line listing form "[id] name (size bytes)".
func (e Entry) Summary() string {
	return fmt.Sprintf("[%d] %s (%d bytes)", e.ID, e.Name, e.Size)
}

// String implements fmt.Stringer using Summary.
func (e Entry) String() string {
	return e.Summary()
}

// Extension returns the text after the last '.' in the name, or "" when the
// name has no dot or ends with one.
func (e Entry) Extension() string {
	i := strings.LastIndexByte(e.Name, '.')
	if i < 0 || i == len(e.Name)-1 {
		return ""
	}
	return e.Name[i+1:]
}

// Preview returns at most n characters of the content and reports whether the
// content was cut short.
func (e Entry) Preview(n int) (string, bool) {
	if n < 0 {
		n = 0
	}
	runes := []rune(e.Content)
	if len(runes) <= n {
		return e.Content, false
	}
	return string(runes[:n]), true
}

// Age is the time elapsed between creation and now, never negative.
func (e Entry) Age(now time.Time) time.Duration {
	if d := now.Sub(e.CreatedAt); d > 0 {
		return d
	}
	return 0
}
