package compiler

import (
	"fmt"
	"strings"
)

// EmptyGraphError reports a compile invocation with no package nodes.
type EmptyGraphError struct{}

func (e *EmptyGraphError) Error() string {
	return "dependency graph is empty: nothing to compile"
}

// UnknownDependencyError reports an edge pointing at an identity that no
// package node in the graph declares.
type UnknownDependencyError struct {
	// Identity is the node declaring the dangling edge.
	Identity string
	// Missing is the identity the edge points at.
	Missing string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("package %q depends on %q, which is not in the graph", e.Identity, e.Missing)
}

// CyclicDependencyError reports a dependency cycle. Cycle holds the
// identities of the cycle itself in order, with no lead-in path.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// ArtifactCollisionError reports two jobs resolving to the same artifact
// path. It can only happen if name disambiguation failed, but a collision
// silently merged downstream is bad enough to check for anyway.
type ArtifactCollisionError struct {
	First  string
	Second string
	Path   string
}

func (e *ArtifactCollisionError) Error() string {
	return fmt.Sprintf("artifact path %q produced by both %q and %q", e.Path, e.First, e.Second)
}
