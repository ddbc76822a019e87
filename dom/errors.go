package dom

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName      = errors.New("invalid custom element name")
	ErrAlreadyDefined   = errors.New("name already defined with a different behavior")
	ErrReadOnlyProperty = errors.New("property is read-only")
	ErrFragmentAttached = errors.New("host already has a fragment attached")
)

var (
	_ error = (*SelectorError)(nil)
	_ error = (*DefinitionError)(nil)
	_ error = (*ParseError)(nil)
)

// SelectorError reports a selector that could not be compiled.
type SelectorError struct {
	Selector string
	Cause    error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q: %v", e.Selector, e.Cause)
}

func (e *SelectorError) Unwrap() error {
	return e.Cause
}

// DefinitionError is returned by Registry.Define.
type DefinitionError struct {
	Name  string
	Cause error
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("define %q: %v", e.Name, e.Cause)
}

func (e *DefinitionError) Unwrap() error {
	return e.Cause
}

// ParseError reports markup that could not be parsed into a fragment.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse fragment: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
