package inspire

import (
	"slices"
)

// BindingSpec declares what a component field binds to. It has three
// forms, all normalized by Normalize:
//
//   - a bare Query: a Selector or a *ComponentType;
//   - a Pair narrowing the match to one of its properties;
//   - a Record with every option.
type BindingSpec interface {
	isBindingSpec()
}

// Query is the search of a binding: a Selector, or a *ComponentType which
// resolves to its namespaced selector so bindings can find child components
// without spelling out the prefix.
type Query interface {
	BindingSpec
	selector(prefix string) (string, error)
}

var (
	_ Query       = Selector("")
	_ Query       = (*ComponentType)(nil)
	_ BindingSpec = Pair{}
	_ BindingSpec = Record{}
)

// Selector is a CSS selector matched against the component's fragment.
type Selector string

func (Selector) isBindingSpec() {}

func (s Selector) selector(string) (string, error) {
	if s == "" {
		return "", ErrSearchMissing
	}
	return string(s), nil
}

// Pair binds to one property of the first element matching Search.
type Pair struct {
	Search   Query
	Property string
}

func (Pair) isBindingSpec() {}

// PairOf is shorthand for a Pair with a Selector search.
func PairOf(selector, property string) Pair {
	return Pair{Search: Selector(selector), Property: property}
}

// Record is the complete form of a binding.
type Record struct {
	Search Query

	// Property, when set, narrows the binding to a property of the matched
	// element. It is only valid when Multi is false.
	Property string

	// Multi matches every element instead of the first.
	Multi bool

	// Events are attached to every element matching Search once all
	// bindings of the component are set up.
	Events []Subscription
}

func (Record) isBindingSpec() {}

// Subscription pairs an event name with its handler.
type Subscription struct {
	Event   string
	Handler EventHandler
}

// On declares a subscription for a Record.
func On(event string, handler EventHandler) Subscription {
	return Subscription{Event: event, Handler: handler}
}

// Binding names the component field a spec is exposed under.
type Binding struct {
	Field string
	Spec  BindingSpec
}

// Bind declares a binding of field to spec.
func Bind(field string, spec BindingSpec) Binding {
	return Binding{Field: field, Spec: spec}
}

// BindingConfig is the canonical form of a BindingSpec.
type BindingConfig struct {
	Search   string
	Property string
	Multi    bool
	Events   []Subscription
}

// Normalize converts spec into its canonical form. Component searches are
// resolved to prefix + "-" + selector.
func Normalize(spec BindingSpec, prefix string) (BindingConfig, error) {
	var (
		cfg    BindingConfig
		search Query
	)

	switch s := spec.(type) {
	case nil:
		return cfg, ErrBindingSpecNil
	case Pair:
		search, cfg.Property = s.Search, s.Property
	case *Pair:
		if s == nil {
			return cfg, ErrBindingSpecNil
		}
		search, cfg.Property = s.Search, s.Property
	case Record:
		search = s.Search
		cfg.Property, cfg.Multi, cfg.Events = s.Property, s.Multi, slices.Clone(s.Events)
	case *Record:
		if s == nil {
			return cfg, ErrBindingSpecNil
		}
		search = s.Search
		cfg.Property, cfg.Multi, cfg.Events = s.Property, s.Multi, slices.Clone(s.Events)
	case Query:
		search = s
	default:
		return cfg, ErrBindingSpecNil
	}

	if search == nil {
		return cfg, ErrSearchMissing
	}

	selector, err := search.selector(prefix)
	if err != nil {
		return cfg, err
	}
	cfg.Search = selector

	return cfg, nil
}
