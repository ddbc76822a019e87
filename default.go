package inspire

import (
	"sync"

	"github.com/junioryono/inspire/dom"
)

var (
	// defaultContainer holds the container used by the package-level
	// functions.
	defaultContainer *Container
	defaultMu        sync.Mutex
)

// SetDefaultContainer sets the Container used by the package-level
// functions. This is similar to slog.SetDefault.
//
// Pass nil to have a fresh container created on next use.
func SetDefaultContainer(c *Container) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultContainer = c
}

// DefaultContainer returns the default Container, creating it on first use.
func DefaultContainer() *Container {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultContainer == nil {
		defaultContainer = NewContainer()
	}
	return defaultContainer
}

// Bootstrap registers root in the default container under prefix.
func Bootstrap(root *ComponentType, prefix ...string) error {
	return DefaultContainer().Bootstrap(root, prefix...)
}

// RegisterComponent registers t in the default container.
func RegisterComponent(t *ComponentType) error {
	return DefaultContainer().RegisterComponent(t)
}

// Mount mounts t on host using the default container.
func Mount(t *ComponentType, host dom.Element) (Behavior, error) {
	return DefaultContainer().Mount(t, host)
}

// SelectorOf returns the namespaced selector of t in the default container.
func SelectorOf(t *ComponentType) (string, error) {
	return DefaultContainer().SelectorOf(t)
}

// ResolveDefault returns the singleton instance of p from the default
// container as a T.
func ResolveDefault[T any](p *ProviderType) (T, error) {
	return Resolve[T](DefaultContainer(), p)
}
