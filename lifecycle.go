package inspire

import (
	"fmt"
	"sync"
)

// Disposable is implemented by provided services that hold resources.
// Container.Close closes them in reverse creation order.
type Disposable interface {
	Close() error
}

// lifecycleManager tracks disposable provider instances
type lifecycleManager struct {
	disposables []Disposable
	names       []string
	mu          sync.Mutex
}

// newLifecycleManager creates a new lifecycle manager
func newLifecycleManager() *lifecycleManager {
	return &lifecycleManager{}
}

// track adds a disposable instance to be managed
func (m *lifecycleManager) track(name string, instance any) {
	if d, ok := instance.(Disposable); ok {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.disposables = append(m.disposables, d)
		m.names = append(m.names, name)
	}
}

// dispose disposes all tracked instances in reverse order
func (m *lifecycleManager) dispose() error {
	m.mu.Lock()
	disposables, names := m.disposables, m.names
	m.disposables, m.names = nil, nil
	m.mu.Unlock()

	var errs []error

	// Dispose in reverse order (LIFO)
	for i := len(disposables) - 1; i >= 0; i-- {
		if err := disposables[i].Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", names[i], err))
		}
	}

	if len(errs) > 0 {
		return &DisposalError{Errors: errs}
	}

	return nil
}
