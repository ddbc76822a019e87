// Package inspire is a small framework for UI components built on custom
// elements.
//
// # Overview
//
// A component is declared with a ComponentType: the bare selector it is
// registered under, the fragment elements it binds to, the services it
// needs and the child components it renders. Its behavior embeds
// Component and implements Render.
//
//	var Counter = &inspire.ComponentType{
//	    Name:     "Counter",
//	    Selector: "counter",
//	    Bindings: []inspire.Binding{
//	        inspire.Bind("label", inspire.PairOf("span", "textContent")),
//	        inspire.Bind("button", inspire.Record{
//	            Search: inspire.Selector("button"),
//	            Events: []inspire.Subscription{
//	                inspire.On("click", inspire.Handle(func(c *CounterView, _ *dom.Event) {
//	                    c.Increment()
//	                })),
//	            },
//	        }),
//	    },
//	    Providers: []*inspire.ProviderType{StoreProvider},
//	    New:       func() inspire.Behavior { return &CounterView{} },
//	}
//
//	type CounterView struct {
//	    inspire.Component
//
//	    Label *inspire.Property `bind:"label"`
//	    store *Store
//	}
//
//	func (v *CounterView) Render() (string, error) {
//	    return `<span>0</span><button>+</button>`, nil
//	}
//
//	func (v *CounterView) Inject(services ...any) error {
//	    v.store = services[0].(*Store)
//	    return nil
//	}
//
// # Registration
//
// Bootstrap sets the namespace prefix of a Container and registers the root
// component type and, transitively, its children. Every type is defined in
// the host element registry as prefix + "-" + selector, at most once:
//
//	c := inspire.NewContainer()
//	if err := c.Bootstrap(App, "ui"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Providers
//
// Services are declared with a ProviderType and resolved as lazy
// singletons per Container, each registered as a named constructor in the
// Container's go.uber.org/dig graph. The instances of a provider's own providers
// are passed, in declaration order, to its Inject method before it is
// cached. Dependency cycles are reported as *CircularDependencyError.
//
//	var LoggerProvider = inspire.NewProvider(NewLogger)
//	var StoreProvider = inspire.NewProvider(NewStore, LoggerProvider)
//
//	store, err := inspire.Resolve[*Store](c, StoreProvider)
//
// # Bindings
//
// A binding exposes elements of the component's fragment as fields. The
// three forms of BindingSpec are normalized by Normalize:
//
//   - a Selector or a *ComponentType: the first matching element;
//   - a Pair: a property of the first matching element, as a *Property;
//   - a Record: every option, including Multi and Events.
//
// Fields are read with Component.Field, Element, Elements and Property, and
// are also assigned to struct fields tagged bind:"name".
//
// # Mounting
//
// Mount constructs a component on a host element: it renders, attaches the
// fragment, mounts registered child tags, injects providers, resolves
// bindings and attaches event subscriptions. The dom package supplies the
// default fragment, event and element registry implementation.
//
// # Errors
//
// Failures are returned as typed errors that unwrap to the sentinel
// values: *SelectorMissingError for a component without a selector,
// *ContractError for a behavior that does not implement Render,
// *CircularDependencyError for provider cycles, and *MountError,
// *ResolutionError, *RegistrationError and *BindingError wrapping the
// cause of a failed operation.
package inspire
