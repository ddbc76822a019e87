package dom

import (
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is an isolated subtree scoped to one component instance.
type Fragment interface {
	// Host returns the element the fragment is attached to.
	Host() Element

	// QuerySelector returns the first descendant matching selector in
	// document order, or nil when nothing matches.
	QuerySelector(selector string) (Element, error)

	// QuerySelectorAll returns every descendant matching selector in
	// document order.
	QuerySelectorAll(selector string) ([]Element, error)

	// HTML renders the current markup of the fragment.
	HTML() string
}

type fragment struct {
	tree *tree
}

// selectors caches compiled selector groups by their source text.
var selectors sync.Map // map[string]cascadia.SelectorGroup

func compile(selector string) (cascadia.SelectorGroup, error) {
	if cached, ok := selectors.Load(selector); ok {
		return cached.(cascadia.SelectorGroup), nil
	}

	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, &SelectorError{Selector: selector, Cause: err}
	}

	actual, _ := selectors.LoadOrStore(selector, group)
	return actual.(cascadia.SelectorGroup), nil
}

// Attach parses markup into a fragment owned by host. Host may be nil for a
// fragment that is not attached to anything.
func Attach(host Element, markup string) (Fragment, error) {
	nodes, err := parseNodes(markup, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	t := newTree(root, host)

	if e, ok := host.(*element); ok {
		e.mu.Lock()
		attached := e.shadow != nil
		if !attached {
			e.shadow = t
		}
		e.mu.Unlock()

		if attached {
			return nil, ErrFragmentAttached
		}
	}

	return &fragment{tree: t}, nil
}

// Detach removes the fragment attached to host so that a new one can be
// attached.
func Detach(host Element) {
	if e, ok := host.(*element); ok {
		e.mu.Lock()
		e.shadow = nil
		e.mu.Unlock()
	}
}

func parseNodes(markup string, context *html.Node) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, &ParseError{Cause: err}
	}
	return nodes, nil
}

func (f *fragment) Host() Element {
	return f.tree.host
}

func (f *fragment) QuerySelector(selector string) (Element, error) {
	group, err := compile(selector)
	if err != nil {
		return nil, err
	}

	n := cascadia.Query(f.tree.root, group)
	if n == nil {
		return nil, nil
	}
	return f.tree.wrap(n), nil
}

func (f *fragment) QuerySelectorAll(selector string) ([]Element, error) {
	group, err := compile(selector)
	if err != nil {
		return nil, err
	}

	nodes := cascadia.QueryAll(f.tree.root, group)
	elements := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, f.tree.wrap(n))
	}
	return elements, nil
}

func (f *fragment) HTML() string {
	return renderChildren(f.tree.root)
}

func renderChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			break
		}
	}
	return b.String()
}
