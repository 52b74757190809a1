package dag

import "fmt"

// Graph is a collection of nodes and directed dependency edges. Insertion
// order of nodes is preserved; it is the tie-breaker for TopoSort.
type Graph struct {
	order []string
	nodes map[string]*node
}

// node is a single vertex. Un-exported so callers interact with the graph
// through string IDs, not struct internals.
type node struct {
	id string
	// deps holds the IDs this node depends on, in edge insertion order.
	deps []string
	// depSet mirrors deps for O(1) duplicate checks.
	depSet map[string]struct{}
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a node with the given ID. Adding an existing ID is a no-op.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{
		id:     id,
		depSet: make(map[string]struct{}),
	}
	g.order = append(g.order, id)
}

// AddEdge records that `id` depends on `dependsOn`. Both nodes must already
// exist; a self-edge is rejected. Duplicate edges collapse to one.
func (g *Graph) AddEdge(id, dependsOn string) error {
	if id == dependsOn {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", id, id)
	}

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("node not found: %s", id)
	}
	if _, ok := g.nodes[dependsOn]; !ok {
		return fmt.Errorf("dependency node not found: %s", dependsOn)
	}

	if _, dup := n.depSet[dependsOn]; dup {
		return nil
	}
	n.deps = append(n.deps, dependsOn)
	n.depSet[dependsOn] = struct{}{}
	return nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Dependencies returns the IDs the given node depends on, in edge
// insertion order.
func (g *Graph) Dependencies(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	out := make([]string, len(n.deps))
	copy(out, n.deps)
	return out, nil
}

// FindCycle searches the graph for a dependency cycle using depth-first
// traversal. It returns the first cycle found as an ordered list of node
// IDs (each entry depends on the next, the last depends on the first), or
// nil if the graph is acyclic. The returned slice contains only the cycle
// itself, not the path that led into it.
func (g *Graph) FindCycle() []string {
	// Classic three-color DFS: done nodes are known safe, nodes on the
	// stack are the current traversal path.
	done := make(map[string]bool)
	onStack := make(map[string]int) // id -> index in stack
	var stack []string

	var visit func(n *node) []string
	visit = func(n *node) []string {
		onStack[n.id] = len(stack)
		stack = append(stack, n.id)

		for _, depID := range n.deps {
			if done[depID] {
				continue
			}
			if at, ok := onStack[depID]; ok {
				// The stack from the first occurrence to here is the cycle.
				cycle := make([]string, len(stack)-at)
				copy(cycle, stack[at:])
				return cycle
			}
			if cycle := visit(g.nodes[depID]); cycle != nil {
				return cycle
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, n.id)
		done[n.id] = true
		return nil
	}

	for _, id := range g.order {
		if done[id] {
			continue
		}
		if cycle := visit(g.nodes[id]); cycle != nil {
			return cycle
		}
	}
	return nil
}
