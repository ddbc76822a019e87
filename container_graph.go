package inspire

import (
	"fmt"
	"io"

	"github.com/junioryono/inspire/internal/graph"
)

// GraphFormat selects the output of WriteGraph.
type GraphFormat int

const (
	// GraphText writes nodes grouped by depth, followed by statistics.
	GraphText GraphFormat = iota

	// GraphDOT writes Graphviz DOT.
	GraphDOT
)

func (f GraphFormat) String() string {
	switch f {
	case GraphText:
		return "text"
	case GraphDOT:
		return "dot"
	default:
		return fmt.Sprintf("GraphFormat(%d)", int(f))
	}
}

func providerKey(p *ProviderType) graph.NodeKey {
	return graph.NodeKey{Kind: graph.Provider, ID: p, Name: p.String()}
}

func componentKey(t *ComponentType) graph.NodeKey {
	return graph.NodeKey{Kind: graph.Component, ID: t, Name: t.String()}
}

// Graph builds the dependency graph of every registered component type and
// every provider reachable from them. Edges point from a declaration to the
// providers it declares.
//
// When the providers form a cycle, the graph without the closing edge is
// returned together with the *CircularDependencyError.
func (c *Container) Graph() (*graph.DependencyGraph, error) {
	g := graph.NewDependencyGraph()

	var (
		firstErr error
		queue    []*ProviderType
		seen     = make(map[*ProviderType]bool)
	)

	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, t := range c.Registered() {
		record(g.AddNode(componentKey(t), providerKeys(t.Providers)))

		for _, p := range t.Providers {
			if p != nil && !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		record(g.AddNode(providerKey(p), providerKeys(p.Providers)))

		for _, dep := range p.Providers {
			if dep != nil && !seen[dep] {
				seen[dep] = true
				queue = append(queue, dep)
			}
		}
	}

	return g, firstErr
}

func providerKeys(providers []*ProviderType) []graph.NodeKey {
	keys := make([]graph.NodeKey, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			keys = append(keys, providerKey(p))
		}
	}
	return keys
}

// Validate checks the declarations of every registered component type
// without constructing anything: every provider must be non-nil and have a
// constructor, and providers must not form a cycle.
func (c *Container) Validate() error {
	registered := c.Registered()

	for _, t := range registered {
		if t.New == nil {
			return &ValidationError{Subject: t.String(), Cause: ErrConstructorNil}
		}
		for _, p := range t.Providers {
			if p == nil {
				return &ValidationError{Subject: t.String(), Cause: ErrProviderNil}
			}
		}
	}

	g, err := c.Graph()
	if err != nil {
		return err
	}
	if err := g.DetectCycles(); err != nil {
		return err
	}

	checked := make(map[*ProviderType]bool)
	for _, t := range registered {
		for _, key := range g.GetTransitiveDependencies(componentKey(t)) {
			p, ok := key.ID.(*ProviderType)
			if !ok || checked[p] {
				continue
			}
			checked[p] = true

			if err := validateProvider(p); err != nil {
				return err
			}
		}
	}

	c.logger.Debug("container validated",
		"components", len(registered),
		"providers", len(checked))

	return nil
}

func validateProvider(p *ProviderType) error {
	if p.New == nil {
		return &ValidationError{Subject: p.String(), Cause: ErrConstructorNil}
	}
	for _, dep := range p.Providers {
		if dep == nil {
			return &ValidationError{Subject: p.String(), Cause: ErrProviderNil}
		}
	}
	return nil
}

// WriteGraph writes the dependency graph of the container to w.
//
// Example:
//
//	c.WriteGraph(os.Stdout, inspire.GraphDOT)
func (c *Container) WriteGraph(w io.Writer, format GraphFormat) error {
	g, err := c.Graph()
	if err != nil {
		return err
	}

	v := graph.NewVisualizer(g)
	switch format {
	case GraphDOT:
		return v.WriteDOT(w)
	case GraphText:
		return v.WriteText(w)
	default:
		return fmt.Errorf("unknown graph format %s", format)
	}
}
