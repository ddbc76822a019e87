package inspire

import (
	"fmt"
	"reflect"
)

// Injectable is implemented by every provided service. Inject receives the
// resolved instances of the provider's declared dependencies, in
// declaration order. It is only called when the provider declares at least
// one dependency.
type Injectable interface {
	Inject(services ...any) error
}

// Service is embedded by services that have nothing to inject.
//
//	type Logger struct {
//	    inspire.Service
//	}
type Service struct{}

// Inject is a no-op.
func (Service) Inject(...any) error { return nil }

// ProviderType describes a service that is resolved as a singleton per
// Container. Identity is the pointer: two ProviderType values with equal
// fields are still distinct providers.
//
// Example:
//
//	var LoggerProvider = inspire.NewProvider(NewLogger)
//	var StoreProvider = inspire.NewProvider(NewStore, LoggerProvider)
//
//	func (s *Store) Inject(services ...any) error {
//	    s.logger = services[0].(*Logger)
//	    return nil
//	}
type ProviderType struct {
	// Name is used in errors, logs and graph output.
	Name string

	// New constructs an instance without arguments.
	New func() Injectable

	// Providers lists the dependencies passed to Inject, in order.
	Providers []*ProviderType
}

// NewProvider declares a provider for the instances returned by constructor.
// The provider is named after T.
func NewProvider[T Injectable](constructor func() T, providers ...*ProviderType) *ProviderType {
	p := &ProviderType{
		Name:      formatType(reflect.TypeFor[T]()),
		Providers: providers,
	}
	if constructor != nil {
		p.New = func() Injectable { return constructor() }
	}
	return p
}

// String returns the provider name.
func (p *ProviderType) String() string {
	if p == nil {
		return "<nil>"
	}
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("provider(%p)", p)
}
