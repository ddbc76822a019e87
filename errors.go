package inspire

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/junioryono/inspire/internal/graph"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// These are base errors that should be wrapped in typed errors when returned.

var (
	// Registration errors.
	ErrSelectorMissing = errors.New("component does not provide a selector")
	ErrComponentNil    = errors.New("component type cannot be nil")
	ErrNotRegistered   = errors.New("component type is not registered")

	// Resolution errors.
	ErrProviderNil    = errors.New("provider type cannot be nil")
	ErrConstructorNil = errors.New("constructor cannot be nil")
	ErrInstanceNil    = errors.New("constructor returned nil")

	// Component contract errors.
	ErrRenderNotImplemented = errors.New("method is not implemented")
	ErrBaseMissing          = errors.New("behavior does not embed inspire.Component")
	ErrAlreadyMounted       = errors.New("host already has a mounted component")

	// Binding errors.
	ErrBindingSpecNil  = errors.New("binding spec cannot be nil")
	ErrSearchMissing   = errors.New("binding does not provide a search")
	ErrElementNotFound = errors.New("bound element not found")
	ErrPropertyOnMulti = errors.New("property binding requires a single element")

	// Lifecycle errors.
	ErrContainerClosed = errors.New("container has been closed")
	ErrContainerNil    = errors.New("container cannot be nil")
)

var (
	_ error = (*SelectorMissingError)(nil)
	_ error = (*ContractError)(nil)
	_ error = (*RegistrationError)(nil)
	_ error = (*ResolutionError)(nil)
	_ error = (*ValidationError)(nil)
	_ error = (*BindingError)(nil)
	_ error = (*PropertyError)(nil)
	_ error = (*MountError)(nil)
	_ error = (*ConstructorPanicError)(nil)
	_ error = (*DisposalError)(nil)
	_ error = (*TypeMismatchError)(nil)
	_ error = (*CircularDependencyError)(nil)
)

// ========================================
// Typed Errors for Rich Context
// ========================================

// CircularDependencyError reports providers that depend on themselves,
// directly or transitively.
type CircularDependencyError = graph.CircularDependencyError

// SelectorMissingError is the configuration error raised when a component
// type without a selector is registered or referenced by a binding.
type SelectorMissingError struct {
	Component string
}

func (e *SelectorMissingError) Error() string {
	return fmt.Sprintf("component %q does not provide a selector", e.Component)
}

func (e *SelectorMissingError) Unwrap() error {
	return ErrSelectorMissing
}

// ContractError indicates a component did not supply a required method.
type ContractError struct {
	Component string
	Method    string
	Cause     error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("component %q: %s: %v", e.Component, e.Method, e.Cause)
}

func (e *ContractError) Unwrap() error {
	return e.Cause
}

// RegistrationError wraps a rejection from the host element registry.
type RegistrationError struct {
	Component string
	Name      string
	Cause     error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("failed to register component %q as %q: %v", e.Component, e.Name, e.Cause)
}

func (e *RegistrationError) Unwrap() error {
	return e.Cause
}

// ResolutionError wraps errors that occur while resolving a provider.
type ResolutionError struct {
	Provider string
	Cause    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve provider %q: %v", e.Provider, e.Cause)
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates a declaration that cannot be used at all.
type ValidationError struct {
	Subject string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("validation failed: %v", e.Cause)
	}
	return fmt.Sprintf("validation failed for %s: %v", e.Subject, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// BindingError wraps a failure to set up one declared binding.
type BindingError struct {
	Component string
	Field     string
	Cause     error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("component %q: binding %q: %v", e.Component, e.Field, e.Cause)
}

func (e *BindingError) Unwrap() error {
	return e.Cause
}

// PropertyError is returned by a property accessor that cannot reach its
// element.
type PropertyError struct {
	Selector string
	Property string
	Cause    error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %q of %q: %v", e.Property, e.Selector, e.Cause)
}

func (e *PropertyError) Unwrap() error {
	return e.Cause
}

// MountError wraps any failure while constructing a component instance.
type MountError struct {
	Component string
	Phase     string // "construct", "render", "attach", "upgrade", "inject", "bind", "watch"
	Cause     error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("mount %q failed during %s: %v", e.Component, e.Phase, e.Cause)
}

func (e *MountError) Unwrap() error {
	return e.Cause
}

// ConstructorPanicError indicates a constructor panicked.
type ConstructorPanicError struct {
	Subject string
	Panic   any
	Stack   []byte
}

func (e *ConstructorPanicError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("constructor of %s panicked: %v\n", e.Subject, e.Panic))

	b.WriteString("\nConstructors should only allocate; wiring belongs in Inject.\n")

	if len(e.Stack) > 0 {
		b.WriteString("\nStack trace:\n")
		b.Write(e.Stack)
	}

	return b.String()
}

// TypeMismatchError indicates a value whose type does not fit where it was
// requested or assigned.
type TypeMismatchError struct {
	Subject  string
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch for %s: expected %s, got %s",
		e.Subject, formatType(e.Expected), formatType(e.Actual))
}

// DisposalError aggregates errors returned while closing cached providers.
type DisposalError struct {
	Errors []error
}

func (e *DisposalError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("container disposal failed: %v", e.Errors[0])
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("container disposal failed with %d errors:", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("\n  %d. %v", i+1, err))
	}
	return sb.String()
}

func (e *DisposalError) Unwrap() []error {
	return e.Errors
}

// IsConfigurationError reports whether err is a configuration error: a
// component without a selector.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrSelectorMissing)
}

// IsCircularDependency reports whether err was caused by a provider cycle.
func IsCircularDependency(err error) bool {
	var cycle *CircularDependencyError
	return errors.As(err, &cycle)
}

// IsContractError reports whether err was caused by a component that did
// not supply a required method.
func IsContractError(err error) bool {
	var contract *ContractError
	return errors.As(err, &contract)
}
