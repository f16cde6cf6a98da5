// Package alias implements the per-type alias store and the local-value map
// used by argument resolution. The store is plain, unsynchronized
// process state, matching the single-threaded cooperative model; see
// runtime.LockedRuntime for the multi-goroutine host escape hatch.
package alias

import (
	"strings"

	"uosteam/values"
)

// Handler computes a dynamic alias value on demand (e.g. "mount", "self").
// It returns ok=false if the alias currently has no value to offer, in
// which case resolution falls through to the static table.
type Handler func() (values.Value, bool)

// Store holds, for every Kind a script can read, two name-keyed tables:
// static values and handler callbacks. Handlers take precedence over static
// values.
type Store struct {
	static   map[values.Kind]map[string]values.Value
	handlers map[values.Kind]map[string]Handler
}

// New creates an empty alias store. Callers typically follow this with
// RegisterDefaults and then any host-specific handler registration.
func New() *Store {
	return &Store{
		static:   make(map[values.Kind]map[string]values.Value),
		handlers: make(map[values.Kind]map[string]Handler),
	}
}

func key(name string) string { return strings.ToLower(name) }

// Set registers a static value for name under kind.
func (s *Store) Set(kind values.Kind, name string, v values.Value) {
	m, ok := s.static[kind]
	if !ok {
		m = make(map[string]values.Value)
		s.static[kind] = m
	}
	m[key(name)] = v
}

// SetHandler registers a handler callback for name under kind.
func (s *Store) SetHandler(kind values.Kind, name string, h Handler) {
	m, ok := s.handlers[kind]
	if !ok {
		m = make(map[string]Handler)
		s.handlers[kind] = m
	}
	m[key(name)] = h
}

// Unset removes both the static value and handler registered for name under
// kind (used by the `unsetalias` command).
func (s *Store) Unset(kind values.Kind, name string) {
	k := key(name)
	delete(s.static[kind], k)
	delete(s.handlers[kind], k)
}

// Resolve looks up name under kind: handler first, then static value.
// Returns ok=false if neither is registered.
func (s *Store) Resolve(kind values.Kind, name string) (values.Value, bool) {
	k := key(name)
	if handlers, ok := s.handlers[kind]; ok {
		if h, ok := handlers[k]; ok {
			if v, ok := h(); ok {
				return v, true
			}
		}
	}
	if statics, ok := s.static[kind]; ok {
		if v, ok := statics[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Clear empties the store (process teardown "cleared on teardown
// or explicitly").
func (s *Store) Clear() {
	s.static = make(map[values.Kind]map[string]values.Value)
	s.handlers = make(map[values.Kind]map[string]Handler)
}
