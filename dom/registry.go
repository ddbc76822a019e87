package dom

import (
	"sync"
)

// Registry associates custom element names with the behavior constructed
// for elements of that name.
type Registry[T comparable] struct {
	mu          sync.RWMutex
	definitions map[string]T
	names       []string
}

// NewRegistry creates an empty registry.
func NewRegistry[T comparable]() *Registry[T] {
	return &Registry[T]{
		definitions: make(map[string]T),
	}
}

// Define associates name with behavior. Defining a name again with the same
// behavior is a no-op; defining it with a different behavior fails.
func (r *Registry[T]) Define(name string, behavior T) error {
	if !ValidName(name) {
		return &DefinitionError{Name: name, Cause: ErrInvalidName}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.definitions[name]; ok {
		if existing == behavior {
			return nil
		}
		return &DefinitionError{Name: name, Cause: ErrAlreadyDefined}
	}

	r.definitions[name] = behavior
	r.names = append(r.names, name)
	return nil
}

// Lookup returns the behavior defined for name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	behavior, ok := r.definitions[name]
	return behavior, ok
}

// Names returns the defined names in definition order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.names...)
}

// Len returns the number of definitions.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.definitions)
}

// ValidName reports whether name is usable as a custom element name: it
// starts with a lower-case ASCII letter, contains a hyphen, and has no
// upper-case letters or whitespace.
func ValidName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}

	hyphen := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '-':
			hyphen = true
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '.', c == '_':
		case c >= 0x80:
		default:
			return false
		}
	}
	return hyphen
}
