package inspire

import (
	"fmt"

	"github.com/junioryono/inspire/dom"
)

// ComponentType describes a UI behavior: the tag it is registered under,
// the elements of its fragment it binds to, the providers it needs and the
// child component types it renders. Identity is the pointer.
//
// Example:
//
//	var Greeting = &inspire.ComponentType{
//	    Name:     "Greeting",
//	    Selector: "greeting",
//	    Bindings: []inspire.Binding{
//	        inspire.Bind("label", inspire.Pair{Search: inspire.Selector("span.title"), Property: "textContent"}),
//	    },
//	    Providers: []*inspire.ProviderType{LoggerProvider},
//	    New:       func() inspire.Behavior { return &GreetingView{} },
//	}
type ComponentType struct {
	// Name is used in errors and logs.
	Name string

	// Selector is the bare tag name. It is registered as prefix + "-" +
	// Selector and is required.
	Selector string

	// Bindings are set up in declaration order.
	Bindings []Binding

	// Providers are resolved in order and passed to Inject.
	Providers []*ProviderType

	// Components are the child component types registered with this one.
	Components []*ComponentType

	// New constructs an instance without arguments.
	New func() Behavior
}

// String returns the component name, falling back to its selector.
func (t *ComponentType) String() string {
	switch {
	case t == nil:
		return "<nil>"
	case t.Name != "":
		return t.Name
	case t.Selector != "":
		return t.Selector
	default:
		return fmt.Sprintf("component(%p)", t)
	}
}

func (*ComponentType) isBindingSpec() {}

// selector returns the namespaced selector of t under prefix.
func (t *ComponentType) selector(prefix string) (string, error) {
	if t == nil {
		return "", ErrSearchMissing
	}
	if t.Selector == "" {
		return "", &SelectorMissingError{Component: t.String()}
	}
	return namespaced(prefix, t.Selector), nil
}

func namespaced(prefix, selector string) string {
	return prefix + "-" + selector
}

// Behavior is implemented by every component. Implementations embed
// Component and override Render, and Inject when they declare providers.
type Behavior interface {
	// Render returns the markup of the component's fragment.
	Render() (string, error)

	// Inject receives the component's resolved providers in declaration
	// order.
	Inject(services ...any) error

	base() *Component
}

// EventHandler handles an event for a component. self is the component the
// handler was attached for.
type EventHandler func(self Behavior, event *dom.Event)

// Handle adapts a handler that expects a concrete component type.
//
//	inspire.On("click", inspire.Handle(func(c *Counter, _ *dom.Event) {
//	    c.count++
//	}))
func Handle[B Behavior](handler func(self B, event *dom.Event)) EventHandler {
	return func(self Behavior, event *dom.Event) {
		if typed, ok := self.(B); ok {
			handler(typed, event)
		}
	}
}

// Component is the base every behavior embeds. It carries the fragment the
// component rendered and the fields its bindings exposed.
type Component struct {
	id        string
	typ       *ComponentType
	container *Container
	self      Behavior
	host      dom.Element
	fragment  dom.Fragment

	fields        map[string]any
	subscriptions []recordedSubscription
}

// recordedSubscription pairs a selector with an event handler, to be
// attached once every binding has been set up.
type recordedSubscription struct {
	selector string
	Subscription
}

func (c *Component) base() *Component { return c }

// Render must be overridden; the base implementation reports a contract
// violation.
func (c *Component) Render() (string, error) {
	return "", &ContractError{
		Component: c.typ.String(),
		Method:    "Render",
		Cause:     ErrRenderNotImplemented,
	}
}

// Inject is a no-op.
func (c *Component) Inject(...any) error { return nil }

// ID returns the unique identifier assigned when the component was mounted.
func (c *Component) ID() string { return c.id }

// Type returns the component type the component was mounted from.
func (c *Component) Type() *ComponentType { return c.typ }

// Host returns the element the component is mounted on.
func (c *Component) Host() dom.Element { return c.host }

// Fragment returns the component's isolated fragment.
func (c *Component) Fragment() dom.Fragment { return c.fragment }

// Container returns the container that mounted the component.
func (c *Component) Container() *Container { return c.container }

// Emit dispatches a bubbling event carrying detail from the component's
// host, so the elements containing the component can observe it. Reports
// whether any listener received the event.
func (c *Component) Emit(name string, detail any) bool {
	if c.host == nil {
		return false
	}
	return c.host.DispatchEvent(dom.NewEvent(name, detail))
}

// Watch attaches handler to target for events named name. The handler is
// invoked with the component as its receiver.
func (c *Component) Watch(target dom.Element, name string, handler EventHandler) {
	if target == nil || handler == nil {
		return
	}

	self := c.self
	target.AddEventListener(name, func(event *dom.Event) {
		handler(self, event)
	})
}

// Field returns the value a binding exposed under name: a dom.Element (nil
// when nothing matched), a []dom.Element for multi bindings, or a *Property
// for bindings narrowed to a property.
func (c *Component) Field(name string) (any, bool) {
	v, ok := c.fields[name]
	return v, ok
}

// Element returns the element bound to name, or nil.
func (c *Component) Element(name string) dom.Element {
	el, _ := c.fields[name].(dom.Element)
	return el
}

// Elements returns the elements bound to name by a multi binding.
func (c *Component) Elements(name string) []dom.Element {
	els, _ := c.fields[name].([]dom.Element)
	return els
}

// Property returns the property accessor bound to name, or nil.
func (c *Component) Property(name string) *Property {
	p, _ := c.fields[name].(*Property)
	return p
}

func (c *Component) setField(name string, value any) {
	if c.fields == nil {
		c.fields = make(map[string]any)
	}
	c.fields[name] = value
}
