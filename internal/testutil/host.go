package testutil

import (
	"sync"

	"github.com/junioryono/inspire"
	"github.com/junioryono/inspire/dom"
)

// RecordingHost is a host element registry that records every Define call
// and can be told to reject names.
type RecordingHost struct {
	mu       sync.Mutex
	calls    []string
	reject   map[string]error
	registry *dom.Registry[*inspire.ComponentType]
}

var _ inspire.HostRegistry = (*RecordingHost)(nil)

func NewRecordingHost() *RecordingHost {
	return &RecordingHost{
		reject:   make(map[string]error),
		registry: dom.NewRegistry[*inspire.ComponentType](),
	}
}

// Reject makes Define fail with err for name.
func (h *RecordingHost) Reject(name string, err error) *RecordingHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reject[name] = err
	return h
}

func (h *RecordingHost) Define(name string, t *inspire.ComponentType) error {
	h.mu.Lock()
	h.calls = append(h.calls, name)
	err := h.reject[name]
	h.mu.Unlock()

	if err != nil {
		return err
	}
	return h.registry.Define(name, t)
}

// Calls returns the names passed to Define, in call order.
func (h *RecordingHost) Calls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.calls...)
}

// Names returns the names that were defined.
func (h *RecordingHost) Names() []string {
	return h.registry.Names()
}

// Lookup returns the component type defined for name.
func (h *RecordingHost) Lookup(name string) (*inspire.ComponentType, bool) {
	return h.registry.Lookup(name)
}
