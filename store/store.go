// Package store holds the in-process collection of named text files. Entries
// exist only for the lifetime of the Store; nothing is persisted.
//
// A Store is owned by a single caller and is not safe for concurrent use.
//
//	s := store.New()
//	id, err := s.Create("notes.txt", "hello")
package store

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/tailored-agentic-units/filecli/observability"
)

// Option configures a Store.
type Option func(*Store)

// WithObserver sets the observer notified of successful mutations.
func WithObserver(o observability.Observer) Option {
	return func(s *Store) { s.observer = o }
}

// WithClock overrides the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is an ordered collection of entries with sequential, never reused
// identifiers. Lookups scan linearly in insertion order.
type Store struct {
	entries  []Entry
	nextID   uint32
	observer observability.Observer
	now      func() time.Time
}

// New creates an empty Store whose first identifier is 1.
func New(opts ...Option) *Store {
	s := &Store{
		nextID:   1,
		observer: observability.NoOpObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create adds a new entry and returns its identifier. It fails when name is
// blank or already in use.
func (s *Store) Create(name, content string) (uint32, error) {
	if s.indexByName(name) >= 0 {
		return 0, errAlreadyExists(name)
	}
	if strings.TrimSpace(name) == "" {
		return 0, InvalidInput("File name cannot be empty")
	}

	e := Entry{
		ID:        s.nextID,
		Name:      name,
		Content:   content,
		Size:      len(content),
		CreatedAt: s.now(),
	}
	s.entries = append(s.entries, e)
	s.nextID++

	s.emit(EventCreate, "store.Create", e)
	return e.ID, nil
}

// Write replaces the content of the named entry.
func (s *Store) Write(name, content string) error {
	i := s.indexByName(name)
	if i < 0 {
		return errNotFound(name)
	}

	s.entries[i].Content = content
	s.entries[i].Size = len(content)

	s.emit(EventWrite, "store.Write", s.entries[i])
	return nil
}

// Read returns the content of the named entry.
func (s *Store) Read(name string) (string, error) {
	i := s.indexByName(name)
	if i < 0 {
		return "", errNotFound(name)
	}
	return s.entries[i].Content, nil
}

// Get returns the named entry.
func (s *Store) Get(name string) (Entry, error) {
	i := s.indexByName(name)
	if i < 0 {
		return Entry{}, errNotFound(name)
	}
	return s.entries[i], nil
}

// GetByID returns the entry with identifier id.
func (s *Store) GetByID(id uint32) (Entry, error) {
	i := s.indexByID(id)
	if i < 0 {
		return Entry{}, errInvalidID(id)
	}
	return s.entries[i], nil
}

// List returns a copy of all entries in creation order.
func (s *Store) List() []Entry {
	return slices.Clone(s.entries)
}

// Delete removes the named entry. Its identifier is never handed out again.
func (s *Store) Delete(name string) error {
	i := s.indexByName(name)
	if i < 0 {
		return errNotFound(name)
	}
	s.removeAt(i, "store.Delete")
	return nil
}

// DeleteByID removes the entry with identifier id.
func (s *Store) DeleteByID(id uint32) error {
	i := s.indexByID(id)
	if i < 0 {
		return errInvalidID(id)
	}
	s.removeAt(i, "store.DeleteByID")
	return nil
}

// Count returns the number of live entries.
func (s *Store) Count() int {
	return len(s.entries)
}

// TotalSize returns the summed size of all live entries.
func (s *Store) TotalSize() int {
	total := 0
	for _, e := range s.entries {
		total += e.Size
	}
	return total
}

func (s *Store) indexByName(name string) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.Name == name })
}

func (s *Store) indexByID(id uint32) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.ID == id })
}

func (s *Store) removeAt(i int, source string) {
	e := s.entries[i]
	s.entries = slices.Delete(s.entries, i, i+1)
	s.emit(EventDelete, source, e)
}

func (s *Store) emit(t observability.EventType, source string, e Entry) {
	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      t,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    source,
		Data: map[string]any{
			"id":   e.ID,
			"name": e.Name,
			"size": e.Size,
		},
	})
}
