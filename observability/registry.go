package observability

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

var (
	registry = map[string]func(*slog.Logger) Observer{
		"noop": func(*slog.Logger) Observer { return NoOpObserver{} },
		"slog": func(l *slog.Logger) Observer { return NewSlogObserver(l) },
	}
	mutex sync.RWMutex
)

// Resolve builds the observer registered under name, bound to logger.
// A nil logger falls back to slog.Default().
func Resolve(name string, logger *slog.Logger) (Observer, error) {
	mutex.RLock()
	factory, exists := registry[name]
	mutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unknown observer: %s (available: %s)", name, strings.Join(Names(), ", "))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return factory(logger), nil
}

// ResolveAll builds every named observer and fans events out to them in the
// given order. A single name yields that observer unwrapped.
func ResolveAll(names []string, logger *slog.Logger) (Observer, error) {
	observers := make([]Observer, 0, len(names))
	for _, name := range names {
		obs, err := Resolve(name, logger)
		if err != nil {
			return nil, err
		}
		observers = append(observers, obs)
	}
	if len(observers) == 1 {
		return observers[0], nil
	}
	return NewMultiObserver(observers...), nil
}

// Register adds or replaces a named observer factory.
func Register(name string, factory func(*slog.Logger) Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	registry[name] = factory
}

// Names lists the registered observer names in sorted order.
func Names() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
