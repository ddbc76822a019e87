package graph

import (
	"fmt"
	"strings"
)

// CircularDependencyError represents a cycle among provider declarations.
type CircularDependencyError struct {
	Node NodeKey
	Path []NodeKey
}

func (e *CircularDependencyError) Error() string {
	var b strings.Builder
	b.WriteString("circular dependency detected:\n\n")

	path := e.Path
	if len(path) == 0 {
		path = []NodeKey{e.Node}
	}

	for i, node := range path {
		b.WriteString(fmt.Sprintf("    %s\n", node.String()))
		if i < len(path)-1 {
			b.WriteString("      ↓\n")
		}
	}
	b.WriteString("      ↓\n")
	b.WriteString(fmt.Sprintf("    %s (cycle)\n", path[0].String()))

	b.WriteString("\nTo resolve this:\n")
	b.WriteString("  • Move the shared state into a provider both sides depend on\n")
	b.WriteString("  • Hand one side a callback instead of the other provider\n")
	b.WriteString("  • Restructure to remove the circular relationship\n")

	return b.String()
}
