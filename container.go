package inspire

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/junioryono/inspire/dom"
	"go.uber.org/dig"
)

// Container owns the state the framework shares between components: the
// namespace prefix, the set of registered component types, the singleton
// provider instances and the components mounted on each host element.
//
// A Container is driven from one goroutine, the way a UI thread drives
// construction and callbacks. Its maps are guarded so that inspection from
// other goroutines is safe, but resolution and mounting are not meant to run
// in parallel.
//
// Example:
//
//	c := inspire.NewContainer(inspire.WithLogger(slog.Default()))
//	if err := c.Bootstrap(App, "ui"); err != nil {
//	    log.Fatal(err)
//	}
//
//	app, err := c.Mount(App, nil)
type Container struct {
	id     string
	config *Config
	logger *slog.Logger

	mu         sync.RWMutex
	prefix     string
	registered map[*ComponentType]string // type -> namespaced identifier
	defined    map[string]*ComponentType // namespaced identifier -> type
	order      []*ComponentType          // registration order
	instances  map[dom.Element]Behavior  // host -> mounted component

	digMu     sync.Mutex
	dig       *dig.Container
	provided  map[*ProviderType]string // provider -> dig name
	lifecycle *lifecycleManager

	closed atomic.Bool
}

// NewContainer creates an empty container. The namespace prefix starts as
// DefaultPrefix until Bootstrap sets it.
func NewContainer(opts ...Option) *Container {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = defaultConfig().Logger
	}
	if cfg.Host == nil {
		cfg.Host = dom.NewRegistry[*ComponentType]()
	}
	if cfg.Fragments == nil {
		cfg.Fragments = dom.Attach
	}

	id := uuid.NewString()

	return &Container{
		id:         id,
		config:     cfg,
		logger:     cfg.Logger.With("container", id),
		prefix:     DefaultPrefix,
		registered: make(map[*ComponentType]string),
		defined:    make(map[string]*ComponentType),
		instances:  make(map[dom.Element]Behavior),
		dig:        dig.New(),
		provided:   make(map[*ProviderType]string),
		lifecycle:  newLifecycleManager(),
	}
}

// ID returns the unique identifier of the container.
func (c *Container) ID() string {
	return c.id
}

// Prefix returns the current namespace prefix.
func (c *Container) Prefix() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prefix
}

// SelectorOf returns the namespaced selector of t under the current prefix:
// prefix + "-" + t.Selector.
func (c *Container) SelectorOf(t *ComponentType) (string, error) {
	return t.selector(c.Prefix())
}

// IsRegistered reports whether t has been registered.
func (c *Container) IsRegistered(t *ComponentType) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.registered[t]
	return ok
}

// Registered returns the registered component types in registration order.
func (c *Container) Registered() []*ComponentType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*ComponentType(nil), c.order...)
}

// Lookup returns the component type registered under a namespaced
// identifier.
func (c *Container) Lookup(name string) (*ComponentType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.defined[name]
	return t, ok
}

// InstanceOf returns the component mounted on host.
func (c *Container) InstanceOf(host dom.Element) (Behavior, bool) {
	if host == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.instances[host]
	return b, ok
}

// Close closes every cached provider instance that implements Disposable,
// in reverse creation order, and drops every memoized instance. Registered
// identifiers stay defined in the host registry. Close is idempotent.
func (c *Container) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	err := c.lifecycle.dispose()

	c.digMu.Lock()
	c.dig = dig.New()
	c.provided = make(map[*ProviderType]string)
	c.digMu.Unlock()

	c.logger.Debug("container closed")
	return err
}

func (c *Container) identifier(t *ComponentType) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.registered[t]
	return name, ok
}

func (c *Container) track(host dom.Element, b Behavior) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances[host] = b
}

func (c *Container) untrack(host dom.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, host)
}
