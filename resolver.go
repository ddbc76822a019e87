package inspire

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/junioryono/inspire/internal/graph"
	"go.uber.org/dig"
)

var (
	injectableType = reflect.TypeFor[Injectable]()
	errorType      = reflect.TypeFor[error]()
	inType         = reflect.TypeFor[dig.In]()
)

// Resolve returns the singleton instance of p, constructing it on first use.
//
// Every provider is registered once with the container's dig graph under a
// name derived from its identity, so two providers building the same Go type
// stay distinct. When p declares providers, each is resolved in order
// (recursively, through the same graph) and the instances are passed in that
// order to the new instance's Inject method. The instance is memoized once
// Inject has returned; later calls return it unchanged. A failed
// construction is not memoized.
//
// A provider that is reached again while it is still being registered yields
// a *CircularDependencyError instead of recursing forever.
func (c *Container) Resolve(p *ProviderType) (any, error) {
	if c.closed.Load() {
		return nil, ErrContainerClosed
	}

	if p == nil {
		return nil, &ValidationError{Cause: ErrProviderNil}
	}

	instances, err := c.resolveAll([]*ProviderType{p})
	if err != nil {
		return nil, wrapResolution(p, err)
	}
	return instances[0], nil
}

// resolveAll resolves providers in order with a single dig invocation.
func (c *Container) resolveAll(providers []*ProviderType) ([]any, error) {
	if c.closed.Load() {
		return nil, ErrContainerClosed
	}

	for _, p := range providers {
		if err := c.provide(p, nil); err != nil {
			return nil, err
		}
	}

	return c.extract(providers)
}

// provide registers p with the dig graph after everything p depends on. path
// holds the providers whose registration is in progress.
func (c *Container) provide(p *ProviderType, path []*ProviderType) error {
	if p == nil {
		return &ValidationError{Cause: ErrProviderNil}
	}

	if c.isProvided(p) {
		return nil
	}

	if slices.Contains(path, p) {
		return cycleError(path, p)
	}

	if p.New == nil {
		return &ValidationError{Subject: p.String(), Cause: ErrConstructorNil}
	}

	next := append(slices.Clip(path), p)
	for _, dep := range p.Providers {
		if err := c.provide(dep, next); err != nil {
			return err
		}
	}

	c.digMu.Lock()
	defer c.digMu.Unlock()

	if _, ok := c.provided[p]; ok {
		return nil
	}

	name := digName(p)
	if err := c.dig.Provide(c.constructor(p), dig.Name(name)); err != nil {
		return &ResolutionError{Provider: p.String(), Cause: err}
	}
	c.provided[p] = name

	return nil
}

func (c *Container) isProvided(p *ProviderType) bool {
	c.digMu.Lock()
	defer c.digMu.Unlock()
	_, ok := c.provided[p]
	return ok
}

// constructor builds the dig constructor of p. Its parameter object lists
// the named dependencies of p in declaration order.
func (c *Container) constructor(p *ProviderType) any {
	var in []reflect.Type
	if len(p.Providers) > 0 {
		in = []reflect.Type{namedParams(p.Providers)}
	}

	fnType := reflect.FuncOf(in, []reflect.Type{injectableType, errorType}, false)
	return reflect.MakeFunc(fnType, func(args []reflect.Value) []reflect.Value {
		instance, err := c.build(p, args)
		if err != nil {
			return []reflect.Value{reflect.Zero(injectableType), reflect.ValueOf(&err).Elem()}
		}
		return []reflect.Value{reflect.ValueOf(&instance).Elem(), reflect.Zero(errorType)}
	}).Interface()
}

// build constructs p and injects the dependencies dig resolved into args.
func (c *Container) build(p *ProviderType, args []reflect.Value) (Injectable, error) {
	instance, err := construct(p.String(), p.New)
	if err != nil {
		return nil, &ResolutionError{Provider: p.String(), Cause: err}
	}

	if len(args) > 0 {
		deps := fieldValues(args[0], len(p.Providers))
		if err := instance.Inject(deps...); err != nil {
			return nil, &ResolutionError{Provider: p.String(), Cause: err}
		}
	}

	c.lifecycle.track(p.String(), instance)

	c.logger.Debug("provider resolved",
		"provider", p.String(),
		"dependencies", len(p.Providers))

	return instance, nil
}

// extract invokes the dig graph with a parameter object naming providers and
// returns their instances in the same order.
func (c *Container) extract(providers []*ProviderType) ([]any, error) {
	var result []any

	fnType := reflect.FuncOf([]reflect.Type{namedParams(providers)}, []reflect.Type{errorType}, false)
	fn := reflect.MakeFunc(fnType, func(args []reflect.Value) []reflect.Value {
		if len(args) > 0 && args[0].IsValid() {
			result = fieldValues(args[0], len(providers))
			return []reflect.Value{reflect.Zero(errorType)}
		}

		err := error(&ResolutionError{Provider: providers[0].String(), Cause: ErrInstanceNil})
		return []reflect.Value{reflect.ValueOf(&err).Elem()}
	})

	c.digMu.Lock()
	container := c.dig
	c.digMu.Unlock()

	if err := container.Invoke(fn.Interface()); err != nil {
		return nil, dig.RootCause(err)
	}

	return result, nil
}

// namedParams returns a dig parameter object with one Injectable field per
// provider, tagged with the provider's dig name.
func namedParams(providers []*ProviderType) reflect.Type {
	fields := make([]reflect.StructField, 0, len(providers)+1)
	fields = append(fields, reflect.StructField{
		Name:      "In",
		Type:      inType,
		Anonymous: true,
	})

	for i, p := range providers {
		fields = append(fields, reflect.StructField{
			Name: fmt.Sprintf("Dep%d", i),
			Type: injectableType,
			Tag:  reflect.StructTag(fmt.Sprintf(`name:"%s"`, digName(p))),
		})
	}

	return reflect.StructOf(fields)
}

// fieldValues reads the n dependency fields of a parameter object built by
// namedParams. Field 0 is the embedded dig.In.
func fieldValues(params reflect.Value, n int) []any {
	values := make([]any, n)
	for i := range values {
		values[i] = params.Field(i + 1).Interface()
	}
	return values
}

// digName keys p by identity. Distinct providers never share a name even
// when their fields are equal.
func digName(p *ProviderType) string {
	return fmt.Sprintf("provider-%p", p)
}

// wrapResolution attaches p to err unless err already names the provider
// that failed.
func wrapResolution(p *ProviderType, err error) error {
	var resolution *ResolutionError
	var validation *ValidationError
	if errors.Is(err, ErrContainerClosed) || errors.As(err, &resolution) ||
		errors.As(err, &validation) || IsCircularDependency(err) {
		return err
	}
	return &ResolutionError{Provider: p.String(), Cause: err}
}

func cycleError(path []*ProviderType, p *ProviderType) error {
	start := slices.Index(path, p)

	keys := make([]graph.NodeKey, 0, len(path)-start)
	for _, q := range path[start:] {
		keys = append(keys, providerKey(q))
	}

	return &CircularDependencyError{
		Node: providerKey(p),
		Path: keys,
	}
}

// Resolve returns the singleton instance of p from c as a T.
//
// Example:
//
//	store, err := inspire.Resolve[*Store](c, StoreProvider)
func Resolve[T any](c *Container, p *ProviderType) (T, error) {
	var zero T

	if c == nil {
		return zero, ErrContainerNil
	}

	instance, err := c.Resolve(p)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Subject:  p.String(),
			Expected: typeOf[T](),
			Actual:   typeOfValue(instance),
		}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on error.
func MustResolve[T any](c *Container, p *ProviderType) T {
	instance, err := Resolve[T](c, p)
	if err != nil {
		panic(err)
	}
	return instance
}
