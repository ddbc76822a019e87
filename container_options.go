package inspire

import (
	"io"
	"log/slog"

	"github.com/junioryono/inspire/dom"
)

// DefaultPrefix is the namespace prefix used when Bootstrap is given none.
const DefaultPrefix = "app"

// HostRegistry associates namespaced identifiers with component types.
// Implementations reject a name that is defined again with a different
// type.
type HostRegistry interface {
	Define(name string, componentType *ComponentType) error
}

// FragmentFactory attaches an isolated, queryable subtree built from markup
// to host.
type FragmentFactory func(host dom.Element, markup string) (dom.Fragment, error)

// Config holds the configuration of a Container.
type Config struct {
	// Logger receives debug records for registration, resolution and
	// mounting. If nil, records are discarded.
	Logger *slog.Logger

	// Host is the element registry component types are defined in.
	// If nil, a dom.Registry is used.
	Host HostRegistry

	// Fragments attaches rendered markup to component hosts.
	// If nil, dom.Attach is used.
	Fragments FragmentFactory

	// ValidateOnBootstrap makes Bootstrap check the provider graph of every
	// registered component for cycles once registration is done.
	ValidateOnBootstrap bool
}

// Option configures a Container.
type Option func(*Config)

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithHost sets the host element registry.
func WithHost(host HostRegistry) Option {
	return func(c *Config) {
		c.Host = host
	}
}

// WithFragmentFactory sets how rendered markup is attached to hosts.
func WithFragmentFactory(factory FragmentFactory) Option {
	return func(c *Config) {
		c.Fragments = factory
	}
}

// WithValidateOnBootstrap enables the cycle check at the end of Bootstrap.
func WithValidateOnBootstrap() Option {
	return func(c *Config) {
		c.ValidateOnBootstrap = true
	}
}

func defaultConfig() *Config {
	return &Config{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Host:      dom.NewRegistry[*ComponentType](),
		Fragments: dom.Attach,
	}
}
