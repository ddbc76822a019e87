package inspire

// setUpBindings resolves the declared bindings of b against its fragment, in
// declaration order, and records their event subscriptions.
func (c *Container) setUpBindings(b Behavior) error {
	comp := b.base()
	if len(comp.typ.Bindings) == 0 {
		return nil
	}

	prefix := c.Prefix()

	for _, binding := range comp.typ.Bindings {
		cfg, err := Normalize(binding.Spec, prefix)
		if err != nil {
			return &BindingError{Component: comp.typ.String(), Field: binding.Field, Cause: err}
		}

		value, err := c.bind(comp, cfg)
		if err != nil {
			return &BindingError{Component: comp.typ.String(), Field: binding.Field, Cause: err}
		}

		for _, sub := range cfg.Events {
			comp.subscriptions = append(comp.subscriptions, recordedSubscription{
				selector:     cfg.Search,
				Subscription: sub,
			})
		}

		comp.setField(binding.Field, value)
		if err := assignField(b, binding.Field, value); err != nil {
			return &BindingError{Component: comp.typ.String(), Field: binding.Field, Cause: err}
		}
	}

	c.logger.Debug("bindings resolved",
		"component", comp.typ.String(),
		"id", comp.id,
		"bindings", len(comp.typ.Bindings),
		"subscriptions", len(comp.subscriptions))

	return nil
}

// bind queries the fragment for one normalized binding and returns the value
// exposed for it: a *Property, a []dom.Element, or a dom.Element that is nil
// when nothing matched.
func (c *Container) bind(comp *Component, cfg BindingConfig) (any, error) {
	if cfg.Multi {
		elements, err := comp.fragment.QuerySelectorAll(cfg.Search)
		if err != nil {
			return nil, err
		}
		if cfg.Property != "" {
			return newProperty(cfg, nil), nil
		}
		return elements, nil
	}

	element, err := comp.fragment.QuerySelector(cfg.Search)
	if err != nil {
		return nil, err
	}
	if cfg.Property != "" {
		return newProperty(cfg, element), nil
	}
	return element, nil
}

// autoWatch attaches every recorded subscription to all elements currently
// matching its selector.
func (c *Container) autoWatch(b Behavior) error {
	comp := b.base()

	for _, sub := range comp.subscriptions {
		if sub.Handler == nil {
			continue
		}

		elements, err := comp.fragment.QuerySelectorAll(sub.selector)
		if err != nil {
			return err
		}

		for _, el := range elements {
			comp.Watch(el, sub.Event, sub.Handler)
		}
	}
	return nil
}

// injectDependencies resolves the providers of b's type in order and passes
// them to b.Inject.
func (c *Container) injectDependencies(b Behavior) error {
	comp := b.base()
	if len(comp.typ.Providers) == 0 {
		return nil
	}

	deps, err := c.resolveAll(comp.typ.Providers)
	if err != nil {
		return err
	}

	return b.Inject(deps...)
}
