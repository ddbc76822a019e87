package dom

import (
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a node of a fragment, or the host a fragment is attached to.
type Element interface {
	// TagName returns the lower-case tag name.
	TagName() string

	// Parent returns the nearest ancestor element. The top-level elements of
	// a fragment return the fragment's host. Returns nil at the top.
	Parent() Element

	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	// Property reads a named property. Known DOM properties such as
	// textContent, innerHTML, id, className and the boolean attributes are
	// backed by the markup; any other name is a plain value stored on the
	// element.
	Property(name string) (any, error)

	// SetProperty writes a named property back onto the element.
	SetProperty(name string, value any) error

	AddEventListener(eventType string, listener Listener)

	// DispatchEvent delivers the event to this element and, if it bubbles,
	// to every ancestor. Reports whether any listener received it.
	DispatchEvent(event *Event) bool
}

// tree owns the wrappers of one parsed subtree so that every query returns
// the same Element for the same node.
type tree struct {
	mu    sync.Mutex
	root  *html.Node
	host  Element
	nodes map[*html.Node]*element
}

func newTree(root *html.Node, host Element) *tree {
	return &tree{
		root:  root,
		host:  host,
		nodes: make(map[*html.Node]*element),
	}
}

func (t *tree) wrap(n *html.Node) *element {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.nodes[n]; ok {
		return e
	}

	e := &element{node: n, tree: t}
	t.nodes[n] = e
	return e
}

// forget drops the wrappers of a subtree that was removed from the markup.
func (t *tree) forget(n *html.Node) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		delete(t.nodes, n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
}

type element struct {
	node *html.Node
	tree *tree

	mu        sync.RWMutex
	props     map[string]any
	listeners map[string][]Listener

	// shadow is the fragment attached to this element, if any.
	shadow *tree
}

// NewElement creates a detached element, typically the host of a component
// that is not placed inside another component's fragment.
func NewElement(tagName string) Element {
	tag := strings.ToLower(tagName)
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return newTree(node, nil).wrap(node)
}

func (e *element) TagName() string {
	return strings.ToLower(e.node.Data)
}

func (e *element) Parent() Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return e.tree.wrap(p)
		}
	}

	if e.tree.host == nil {
		return nil
	}
	return e.tree.host
}

func (e *element) Attribute(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func (e *element) SetAttribute(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *element) RemoveAttribute(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	attrs := e.node.Attr[:0]
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			continue
		}
		attrs = append(attrs, attr)
	}
	e.node.Attr = attrs
}

func (e *element) AddEventListener(eventType string, listener Listener) {
	if listener == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *element) DispatchEvent(event *Event) bool {
	return dispatch(e, event)
}

// handleEvent runs the listeners registered on e for the event's type.
func (e *element) handleEvent(event *Event) bool {
	e.mu.RLock()
	listeners := append([]Listener(nil), e.listeners[event.Type]...)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
		if event.immediateStopped {
			break
		}
	}
	return len(listeners) > 0
}

func (e *element) String() string {
	var b strings.Builder
	if err := html.Render(&b, e.node); err != nil {
		return "<" + e.TagName() + ">"
	}
	return b.String()
}
