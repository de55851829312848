package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/tailored-agentic-units/filecli/store"
)

var separator = strings.Repeat("-", 40)

func detailed(e store.Entry, now time.Time, previewLength int) string {
	preview, truncated := e.Preview(previewLength)
	marker := ""
	if truncated {
		marker = "..."
	}

	return fmt.Sprintf(
		"ID: %d\nName: %s\nSize: %d bytes\nCreated: %s ago\nPreview: %s%s",
		e.ID,
		e.Name,
		e.Size,
		e.Age(now).Round(time.Millisecond),
		preview,
		marker,
	)
}

func extensionLabel(ext string) string {
	if ext == store.NoExtension {
		return ext
	}
	return "." + ext
}

func helpTable() string {
	var b strings.Builder
	for _, def := range commands {
		fmt.Fprintf(&b, "  %-14s - %s\n", strings.Join(def.names, ", "), def.help)
	}
	return b.String()
}
