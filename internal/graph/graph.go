package graph

import (
	"fmt"
	"sort"
	"sync"
)

// Kind distinguishes the declarations a node can stand for.
type Kind int

const (
	// Provider nodes stand for service providers.
	Provider Kind = iota

	// Component nodes stand for component types.
	Component
)

func (k Kind) String() string {
	switch k {
	case Provider:
		return "provider"
	case Component:
		return "component"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NodeKey uniquely identifies a node in the graph. ID carries the identity
// of the declaration (a pointer); Name is only used for display and must be
// derived from ID consistently by callers.
type NodeKey struct {
	Kind Kind
	ID   any
	Name string
}

// Node is a declaration in the dependency graph.
type Node struct {
	Key NodeKey

	Dependencies []NodeKey // nodes this node depends on, in declaration order
	Dependents   []NodeKey // nodes that depend on this node
	Depth        int       // longest path to a node without dependencies
}

// DependencyGraph records dependency edges between providers and
// components. It rejects edges that close a cycle.
type DependencyGraph struct {
	mu    sync.RWMutex
	nodes map[NodeKey]*Node
	edges map[NodeKey][]NodeKey // adjacency list, node -> dependencies

	// insertion order keeps traversal output deterministic
	order []NodeKey
}

// NewDependencyGraph creates an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		nodes: make(map[NodeKey]*Node),
		edges: make(map[NodeKey][]NodeKey),
	}
}

// AddNode adds key with its dependencies. Dependencies that are not yet in
// the graph are added as placeholder nodes. If the new edges close a cycle
// they are rolled back and a *CircularDependencyError is returned.
func (g *DependencyGraph) AddNode(key NodeKey, dependencies []NodeKey) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	previous, replaced := g.edges[key]
	g.ensure(key)

	deps := make([]NodeKey, 0, len(dependencies))
	for _, dep := range dependencies {
		g.ensure(dep)
		deps = append(deps, dep)
	}
	g.edges[key] = deps

	if err := g.detectCyclesFrom(key); err != nil {
		if replaced {
			g.edges[key] = previous
		} else {
			g.edges[key] = nil
		}
		g.updateLinks()
		return err
	}

	g.updateLinks()
	return nil
}

func (g *DependencyGraph) ensure(key NodeKey) {
	if _, ok := g.nodes[key]; ok {
		return
	}
	g.nodes[key] = &Node{Key: key}
	g.order = append(g.order, key)
}

// updateLinks recomputes the Dependencies and Dependents lists from edges.
func (g *DependencyGraph) updateLinks() {
	for _, node := range g.nodes {
		node.Dependents = nil
	}

	for _, from := range g.order {
		tos := g.edges[from]
		node := g.nodes[from]
		node.Dependencies = append([]NodeKey(nil), tos...)

		for _, to := range tos {
			if toNode, ok := g.nodes[to]; ok {
				toNode.Dependents = append(toNode.Dependents, from)
			}
		}
	}
}

// DetectCycles checks every node for a cycle.
func (g *DependencyGraph) DetectCycles() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, key := range g.order {
		if err := g.detectCyclesFrom(key); err != nil {
			return err
		}
	}
	return nil
}

// detectCyclesFrom performs DFS cycle detection from a specific node.
func (g *DependencyGraph) detectCyclesFrom(start NodeKey) error {
	type stackItem struct {
		key      NodeKey
		entering bool
	}

	stack := []stackItem{{key: start, entering: true}}
	onPath := make(map[NodeKey]bool)
	visited := make(map[NodeKey]bool)
	var path []NodeKey

	for len(stack) > 0 {
		item := stack[len(stack)-1]

		if !item.entering {
			stack = stack[:len(stack)-1]
			delete(onPath, item.key)
			visited[item.key] = true
			path = path[:len(path)-1]
			continue
		}

		if onPath[item.key] {
			return &CircularDependencyError{
				Node: item.key,
				Path: cyclePath(path, item.key),
			}
		}

		if visited[item.key] {
			stack = stack[:len(stack)-1]
			continue
		}

		onPath[item.key] = true
		path = append(path, item.key)
		stack[len(stack)-1].entering = false

		deps := g.edges[item.key]
		for i := len(deps) - 1; i >= 0; i-- {
			if !visited[deps[i]] {
				stack = append(stack, stackItem{key: deps[i], entering: true})
			}
		}
	}

	return nil
}

// cyclePath returns the part of path that starts at key.
func cyclePath(path []NodeKey, key NodeKey) []NodeKey {
	for i, k := range path {
		if k == key {
			return append([]NodeKey(nil), path[i:]...)
		}
	}
	return []NodeKey{key}
}

// TopologicalSort returns nodes in dependency order (dependencies first).
// Nodes that become ready together keep insertion order.
func (g *DependencyGraph) TopologicalSort() ([]*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topologicalSort()
}

func (g *DependencyGraph) topologicalSort() ([]*Node, error) {
	position := make(map[NodeKey]int, len(g.order))
	remaining := make(map[NodeKey]int, len(g.nodes))
	var ready []NodeKey

	for i, key := range g.order {
		position[key] = i
		remaining[key] = len(g.edges[key])
		if remaining[key] == 0 {
			ready = append(ready, key)
		}
	}

	result := make([]*Node, 0, len(g.nodes))
	for len(ready) > 0 {
		current := ready[0]
		ready = ready[1:]

		node := g.nodes[current]
		result = append(result, node)

		var unlocked []NodeKey
		for _, dependent := range node.Dependents {
			remaining[dependent]--
			if remaining[dependent] == 0 {
				unlocked = append(unlocked, dependent)
			}
		}
		sort.Slice(unlocked, func(i, j int) bool {
			return position[unlocked[i]] < position[unlocked[j]]
		})
		ready = append(ready, unlocked...)
	}

	if len(result) != len(g.nodes) {
		return nil, fmt.Errorf("circular dependency detected: graph contains %d nodes but only %d could be sorted",
			len(g.nodes), len(result))
	}

	return result, nil
}

// GetDependencies returns the direct dependencies of key.
func (g *DependencyGraph) GetDependencies(key NodeKey) []NodeKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if node, ok := g.nodes[key]; ok {
		return append([]NodeKey(nil), node.Dependencies...)
	}
	return nil
}

// GetTransitiveDependencies returns all dependencies of key, direct and
// indirect, in depth-first declaration order.
func (g *DependencyGraph) GetTransitiveDependencies(key NodeKey) []NodeKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	visited := map[NodeKey]bool{key: true}
	var result []NodeKey

	var collect func(current NodeKey)
	collect = func(current NodeKey) {
		for _, dep := range g.edges[current] {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			result = append(result, dep)
			collect(dep)
		}
	}

	collect(key)
	return result
}

// GetNode returns the node for key.
func (g *DependencyGraph) GetNode(key NodeKey) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[key]
}

// Size returns the number of nodes.
func (g *DependencyGraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// IsAcyclic reports whether the graph has no cycles.
func (g *DependencyGraph) IsAcyclic() bool {
	return g.DetectCycles() == nil
}

// Nodes returns every node in insertion order.
func (g *DependencyGraph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]*Node, 0, len(g.order))
	for _, key := range g.order {
		nodes = append(nodes, g.nodes[key])
	}
	return nodes
}

func (g *DependencyGraph) calculateDepths() {
	sorted, err := g.topologicalSort()
	if err != nil {
		for _, node := range g.nodes {
			node.Depth = -1
		}
		return
	}

	for _, node := range sorted {
		node.Depth = 0
		for _, dep := range node.Dependencies {
			if d := g.nodes[dep].Depth + 1; d > node.Depth {
				node.Depth = d
			}
		}
	}
}

// String returns the display name of the key.
func (k NodeKey) String() string {
	if k.Name != "" {
		return k.Name
	}
	return fmt.Sprintf("%s(%v)", k.Kind, k.ID)
}

// String returns a short description of the node.
func (n *Node) String() string {
	return fmt.Sprintf("Node{%s, deps:%d, dependents:%d, depth:%d}",
		n.Key.String(), len(n.Dependencies), len(n.Dependents), n.Depth)
}
