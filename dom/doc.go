// Package dom provides the host primitives an inspire component runs on:
// isolated markup fragments that can be queried with CSS selectors,
// elements with properties and event listeners, and a registry that maps
// custom element names to behaviors.
//
// Fragments are parsed with golang.org/x/net/html and queried with
// github.com/andybalholm/cascadia. Each element keeps a stable identity for
// the lifetime of its fragment, so a listener attached to an element found
// by one query is still attached when a later query finds the same element.
//
// # Events
//
// Events dispatched on an element are delivered to the element first and,
// when the event bubbles, to each ancestor in turn. The top-level elements of
// a fragment report the fragment's host as their parent, so an event raised
// inside a component reaches the elements that contain the component:
//
//	host := dom.NewElement("app-counter")
//	frag, _ := dom.Attach(host, `<button>+</button>`)
//	button, _ := frag.QuerySelector("button")
//
//	host.AddEventListener("click", func(ev *dom.Event) {
//	    fmt.Println("clicked", ev.Target.TagName())
//	})
//	button.DispatchEvent(dom.NewEvent("click", nil))
package dom
