package inspire

import (
	"github.com/google/uuid"
	"github.com/junioryono/inspire/dom"
)

// Mount constructs an instance of the registered component type t on host.
// When host is nil a detached element named after t's namespaced selector
// is created.
//
// The instance goes through these phases, in order:
//
//  1. construct: t.New is called;
//  2. render: Render returns the markup of the fragment;
//  3. attach: the markup is attached to host as an isolated fragment;
//  4. upgrade: descendants whose tag names a registered component are
//     mounted, so their instances exist before the parent binds to them;
//  5. inject: the providers of t are resolved and passed to Inject;
//  6. bind: the bindings of t are resolved against the fragment;
//  7. watch: recorded event subscriptions are attached.
//
// A failure in any phase is returned as a *MountError naming the phase.
// The fragment attached to host and every component upgraded inside it are
// released, so the same host can be mounted again.
func (c *Container) Mount(t *ComponentType, host dom.Element) (Behavior, error) {
	if c.closed.Load() {
		return nil, ErrContainerClosed
	}

	if t == nil {
		return nil, &ValidationError{Cause: ErrComponentNil}
	}

	name, ok := c.identifier(t)
	if !ok {
		return nil, &ValidationError{Subject: t.String(), Cause: ErrNotRegistered}
	}

	if host == nil {
		host = dom.NewElement(name)
	} else if _, mounted := c.InstanceOf(host); mounted {
		return nil, &MountError{Component: t.String(), Phase: "attach", Cause: ErrAlreadyMounted}
	}

	b, err := c.mount(t, host)
	if err != nil {
		c.release(host)
		return nil, err
	}

	return b, nil
}

func (c *Container) mount(t *ComponentType, host dom.Element) (Behavior, error) {
	fail := func(phase string, err error) error {
		return &MountError{Component: t.String(), Phase: phase, Cause: err}
	}

	if t.New == nil {
		return nil, fail("construct", &ValidationError{Subject: t.String(), Cause: ErrConstructorNil})
	}

	b, err := construct(t.String(), t.New)
	if err != nil {
		return nil, fail("construct", err)
	}

	comp := b.base()
	if comp == nil {
		return nil, fail("construct", &ContractError{Component: t.String(), Method: "base", Cause: ErrBaseMissing})
	}

	comp.id = uuid.NewString()
	comp.typ = t
	comp.container = c
	comp.self = b
	comp.host = host

	c.track(host, b)

	markup, err := b.Render()
	if err != nil {
		return nil, fail("render", err)
	}

	fragment, err := c.config.Fragments(host, markup)
	if err != nil {
		return nil, fail("attach", err)
	}
	comp.fragment = fragment

	if err := c.upgrade(fragment); err != nil {
		return nil, fail("upgrade", err)
	}

	if err := c.injectDependencies(b); err != nil {
		return nil, fail("inject", err)
	}

	if err := c.setUpBindings(b); err != nil {
		return nil, fail("bind", err)
	}

	if err := c.autoWatch(b); err != nil {
		return nil, fail("watch", err)
	}

	c.logger.Debug("component mounted",
		"component", t.String(),
		"selector", host.TagName(),
		"id", comp.id)

	return b, nil
}

// release undoes a failed mount on host: components upgraded inside its
// fragment are released first, then the fragment is detached and host is
// forgotten, so host can be mounted again.
func (c *Container) release(host dom.Element) {
	b, ok := c.InstanceOf(host)
	if !ok {
		return
	}

	if comp := b.base(); comp != nil && comp.fragment != nil {
		if elements, err := comp.fragment.QuerySelectorAll("*"); err == nil {
			for _, el := range elements {
				c.release(el)
			}
		}
		dom.Detach(host)
	}

	c.untrack(host)

	c.logger.Debug("mount released", "selector", host.TagName())
}

// upgrade mounts every element of fragment whose tag names a registered
// component, in document order.
func (c *Container) upgrade(fragment dom.Fragment) error {
	elements, err := fragment.QuerySelectorAll("*")
	if err != nil {
		return err
	}

	for _, el := range elements {
		t, ok := c.Lookup(el.TagName())
		if !ok {
			continue
		}
		if _, mounted := c.InstanceOf(el); mounted {
			continue
		}

		if _, err := c.Mount(t, el); err != nil {
			return err
		}
	}
	return nil
}

// MountAs mounts t on host and returns the instance as a B.
//
// Example:
//
//	counter, err := inspire.MountAs[*Counter](c, CounterType, nil)
func MountAs[B Behavior](c *Container, t *ComponentType, host dom.Element) (B, error) {
	var zero B

	if c == nil {
		return zero, ErrContainerNil
	}

	b, err := c.Mount(t, host)
	if err != nil {
		return zero, err
	}

	typed, ok := b.(B)
	if !ok {
		return zero, &TypeMismatchError{
			Subject:  t.String(),
			Expected: typeOf[B](),
			Actual:   typeOfValue(b),
		}
	}
	return typed, nil
}
