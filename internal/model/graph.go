package model

// Dependency is one kinded edge from a package to another package's identity.
type Dependency struct {
	On   string
	Kind DependencyKind
}

// PackageNode is one buildable unit handed over by the resolver.
type PackageNode struct {
	// Identity uniquely keys the node across the whole graph
	// (name plus version/toolchain signature).
	Identity string
	// DisplayName is the human-readable module label.
	DisplayName string
	// Easyconfig is the build recipe file name passed to the build command.
	Easyconfig string
	// Deps holds the node's outgoing dependency edges.
	Deps []Dependency
	// Resources optionally overrides the run-wide resource hints.
	Resources *Resources
}

// Graph is the resolver's output: package nodes in manifest declaration
// order. Declaration order matters because it is the tie-breaker for the
// compiler's deterministic output ordering.
type Graph struct {
	Nodes []*PackageNode
}

// Node looks up a node by identity. Linear scan is fine at the scale this
// tool operates on (hundreds of nodes).
func (g *Graph) Node(identity string) (*PackageNode, bool) {
	for _, n := range g.Nodes {
		if n.Identity == identity {
			return n, true
		}
	}
	return nil, false
}
