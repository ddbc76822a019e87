package inspire

import (
	"fmt"

	"github.com/junioryono/inspire/dom"
)

// Property is the field exposed by a binding narrowed to a property. Every
// Get and Set is forwarded to the matched element; nothing is cached.
type Property struct {
	selector string
	name     string
	get      func() (any, error)
	set      func(value any) error
}

// newProperty compiles a binding with a property into forwarding accessors
// closed over the matched element.
func newProperty(cfg BindingConfig, element dom.Element) *Property {
	p := &Property{
		selector: cfg.Search,
		name:     cfg.Property,
	}

	var fail error
	switch {
	case cfg.Multi:
		fail = &PropertyError{Selector: cfg.Search, Property: cfg.Property, Cause: ErrPropertyOnMulti}
	case element == nil:
		fail = &PropertyError{Selector: cfg.Search, Property: cfg.Property, Cause: ErrElementNotFound}
	}

	if fail != nil {
		p.get = func() (any, error) { return nil, fail }
		p.set = func(any) error { return fail }
		return p
	}

	p.get = func() (any, error) {
		return element.Property(cfg.Property)
	}
	p.set = func(value any) error {
		return element.SetProperty(cfg.Property, value)
	}
	return p
}

// Name returns the property name.
func (p *Property) Name() string {
	return p.name
}

// Selector returns the selector of the element the property belongs to.
func (p *Property) Selector() string {
	return p.selector
}

// Get reads the property from the element.
func (p *Property) Get() (any, error) {
	return p.get()
}

// Set writes the property onto the element.
func (p *Property) Set(value any) error {
	return p.set(value)
}

// String reads the property and formats it, returning "" when it cannot be
// read.
func (p *Property) String() string {
	v, err := p.get()
	if err != nil || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
