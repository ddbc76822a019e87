package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// reflectedAttributes maps string properties onto the attribute they mirror.
var reflectedAttributes = map[string]string{
	"id":          "id",
	"className":   "class",
	"title":       "title",
	"href":        "href",
	"src":         "src",
	"name":        "name",
	"type":        "type",
	"placeholder": "placeholder",
	"slot":        "slot",
	"lang":        "lang",
	"dir":         "dir",
}

// booleanAttributes maps boolean properties onto the attribute whose
// presence they mirror.
var booleanAttributes = map[string]string{
	"hidden":   "hidden",
	"disabled": "disabled",
	"checked":  "checked",
	"selected": "selected",
	"readOnly": "readonly",
	"required": "required",
	"multiple": "multiple",
	"open":     "open",
}

func (e *element) Property(name string) (any, error) {
	switch name {
	case "tagName":
		return strings.ToUpper(e.TagName()), nil
	case "localName":
		return e.TagName(), nil
	case "textContent":
		e.mu.RLock()
		defer e.mu.RUnlock()
		return textContent(e.node), nil
	case "innerHTML":
		e.mu.RLock()
		defer e.mu.RUnlock()
		return renderChildren(e.node), nil
	case "outerHTML":
		return e.String(), nil
	case "value":
		e.mu.RLock()
		v, ok := e.props[name]
		e.mu.RUnlock()
		if ok {
			return v, nil
		}
		attr, _ := e.Attribute("value")
		return attr, nil
	}

	if attr, ok := reflectedAttributes[name]; ok {
		v, _ := e.Attribute(attr)
		return v, nil
	}
	if attr, ok := booleanAttributes[name]; ok {
		_, present := e.Attribute(attr)
		return present, nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.props[name], nil
}

func (e *element) SetProperty(name string, value any) error {
	switch name {
	case "tagName", "localName", "outerHTML":
		return fmt.Errorf("%w: %s", ErrReadOnlyProperty, name)
	case "textContent":
		e.replaceChildren(nil)
		if text := stringify(value); text != "" {
			e.mu.Lock()
			e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
			e.mu.Unlock()
		}
		return nil
	case "innerHTML":
		nodes, err := parseNodes(stringify(value), e.node)
		if err != nil {
			return err
		}
		e.replaceChildren(nodes)
		return nil
	case "value":
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.props == nil {
			e.props = make(map[string]any)
		}
		e.props[name] = stringify(value)
		return nil
	}

	if attr, ok := reflectedAttributes[name]; ok {
		e.SetAttribute(attr, stringify(value))
		return nil
	}
	if attr, ok := booleanAttributes[name]; ok {
		if truthy(value) {
			e.SetAttribute(attr, "")
		} else {
			e.RemoveAttribute(attr)
		}
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[name] = value
	return nil
}

func (e *element) replaceChildren(nodes []*html.Node) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		e.tree.forget(c)
		c = next
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	default:
		return true
	}
}
