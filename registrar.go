package inspire

// Bootstrap sets the namespace prefix and registers root together with every
// component type reachable through its Components. The prefix defaults to
// DefaultPrefix when omitted. An empty prefix is treated as omitted too: it
// would produce identifiers starting with "-", which are not valid custom
// element names, so Bootstrap(root, "") registers under DefaultPrefix rather
// than under an empty namespace.
//
// Example:
//
//	c := inspire.NewContainer()
//	if err := c.Bootstrap(App, "ui"); err != nil {
//	    return err
//	}
//	// App is now defined as "ui-" + App.Selector.
func (c *Container) Bootstrap(root *ComponentType, prefix ...string) error {
	if c.closed.Load() {
		return ErrContainerClosed
	}

	p := DefaultPrefix
	if len(prefix) > 0 && prefix[0] != "" {
		p = prefix[0]
	}

	c.mu.Lock()
	c.prefix = p
	c.mu.Unlock()

	c.logger.Debug("bootstrapping", "component", root.String(), "prefix", p)

	if err := c.RegisterComponent(root); err != nil {
		return err
	}

	if c.config.ValidateOnBootstrap {
		return c.Validate()
	}
	return nil
}

// RegisterComponent defines t in the host registry under prefix + "-" +
// t.Selector, then registers its child component types in declaration
// order, depth first. A type is registered at most once per container;
// registering it again is a no-op.
//
// A type without a selector fails with a *SelectorMissingError. Types that
// were registered before the failure stay registered.
func (c *Container) RegisterComponent(t *ComponentType) error {
	if t == nil {
		return &ValidationError{Cause: ErrComponentNil}
	}

	stack := []*ComponentType{t}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == nil {
			return &ValidationError{Subject: "child component", Cause: ErrComponentNil}
		}

		registered, err := c.register(current)
		if err != nil {
			return err
		}
		if !registered {
			continue
		}

		for i := len(current.Components) - 1; i >= 0; i-- {
			stack = append(stack, current.Components[i])
		}
	}

	return nil
}

// register defines one component type. It reports false when t was already
// registered.
func (c *Container) register(t *ComponentType) (bool, error) {
	if c.IsRegistered(t) {
		return false, nil
	}

	name, err := t.selector(c.Prefix())
	if err != nil {
		return false, err
	}

	if err := c.config.Host.Define(name, t); err != nil {
		return false, &RegistrationError{Component: t.String(), Name: name, Cause: err}
	}

	c.mu.Lock()
	c.registered[t] = name
	c.defined[name] = t
	c.order = append(c.order, t)
	c.mu.Unlock()

	c.logger.Debug("component registered", "component", t.String(), "selector", name)

	return true, nil
}
