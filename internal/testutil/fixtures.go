package testutil

import (
	"sync/atomic"

	"github.com/junioryono/inspire"
)

// Counter counts constructor calls.
type Counter struct {
	n atomic.Int32
}

// Count returns the number of calls so far.
func (c *Counter) Count() int {
	return int(c.n.Load())
}

// CountingProvider declares a provider named name whose constructor calls
// are counted.
func CountingProvider[T inspire.Injectable](name string, constructor func() T, providers ...*inspire.ProviderType) (*inspire.ProviderType, *Counter) {
	counter := &Counter{}
	p := &inspire.ProviderType{
		Name: name,
		New: func() inspire.Injectable {
			counter.n.Add(1)
			return constructor()
		},
		Providers: providers,
	}
	return p, counter
}

// CloserProvider declares a provider for a *TestCloser that logs its name
// into log when closed.
func CloserProvider(name string, log *[]string, providers ...*inspire.ProviderType) *inspire.ProviderType {
	return &inspire.ProviderType{
		Name: name,
		New: func() inspire.Injectable {
			return &TestCloser{Name: name, Log: log}
		},
		Providers: providers,
	}
}

// Leaf declares a component type with a selector and no behavior beyond
// rendering markup.
func Leaf(selector, markup string) *inspire.ComponentType {
	return &inspire.ComponentType{
		Name:     selector,
		Selector: selector,
		New: func() inspire.Behavior {
			return &StaticView{Markup: markup}
		},
	}
}

// StaticView renders fixed markup.
type StaticView struct {
	inspire.Component

	Markup string
}

func (v *StaticView) Render() (string, error) {
	return v.Markup, nil
}
