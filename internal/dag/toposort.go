package dag

import "fmt"

// TopoSort returns every node ID ordered so that each node appears after
// all of its dependencies. Among nodes whose dependencies are all
// satisfied, insertion order wins, which makes the ordering fully
// deterministic for identical input. An error is returned if the graph
// contains a cycle; callers wanting the cycle itself should use FindCycle.
func (g *Graph) TopoSort() ([]string, error) {
	indegree := make(map[string]int, len(g.nodes))
	for _, id := range g.order {
		indegree[id] = len(g.nodes[id].deps)
	}

	// dependents index, needed to decrement indegrees as nodes are emitted.
	dependents := make(map[string][]string, len(g.nodes))
	for _, id := range g.order {
		for _, depID := range g.nodes[id].deps {
			dependents[depID] = append(dependents[depID], id)
		}
	}

	emitted := make(map[string]bool, len(g.nodes))
	out := make([]string, 0, len(g.nodes))

	// Quadratic scan instead of a heap: the graph is hundreds of nodes at
	// most, and a fresh scan keeps insertion order as the tie-break with
	// no extra machinery.
	for len(out) < len(g.order) {
		progressed := false
		for _, id := range g.order {
			if emitted[id] || indegree[id] != 0 {
				continue
			}
			emitted[id] = true
			out = append(out, id)
			for _, dep := range dependents[id] {
				indegree[dep]--
			}
			progressed = true
			break
		}
		if !progressed {
			return nil, fmt.Errorf("graph contains a cycle; ordering impossible")
		}
	}

	return out, nil
}
