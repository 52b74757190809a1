// Package dag provides the directed-graph bookkeeping shared by the
// compiler and the merge engine: nodes keyed by string ID, dependency
// edges, cycle extraction, and a deterministic topological ordering.
//
// The graph is a disposable analysis structure. Callers build one per
// invocation, query it, and throw it away; it carries no execution state.
package dag
