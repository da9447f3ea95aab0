package client

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// EventRegistry maps event type names to value constructors so the
// router can decode unsolicited payloads into their concrete types.
// Generated bindings register their event constructors during setup;
// nothing is registered implicitly.
type EventRegistry struct {
	mu    sync.RWMutex
	ctors map[string]func() any
}

// NewEventRegistry creates an empty registry.
func NewEventRegistry() *EventRegistry {
	return &EventRegistry{
		ctors: make(map[string]func() any),
	}
}

// Register associates an event type name with a constructor returning a
// pointer to a fresh value to decode into. Registering a name again
// replaces the previous constructor.
func (g *EventRegistry) Register(name string, ctor func() any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctors[name] = ctor
}

// Decode builds and fills the value registered under name. Unregistered
// names and malformed payloads are errors; the router drops such events
// after logging them.
func (g *EventRegistry) Decode(name string, raw []byte) (any, error) {
	g.mu.RLock()
	ctor, ok := g.ctors[name]
	g.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no event registered for %q", name)
	}

	v := ctor()
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("decode event %s: %w", name, err)
	}
	return v, nil
}

// Names returns the registered event names, sorted.
func (g *EventRegistry) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.ctors))
	for name := range g.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
