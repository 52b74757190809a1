package model

import "fmt"

// DependencyKind is the closed set of dependency edge kinds a resolver can
// hand over. Anything outside this set is rejected at load time.
type DependencyKind string

const (
	// KindRuntime is a dependency needed when the built package runs.
	KindRuntime DependencyKind = "runtime"
	// KindBuild is a dependency needed only while building the package.
	KindBuild DependencyKind = "build"
	// KindHidden is a dependency installed as a hidden module. The build
	// still consumes its artifacts even though users never see it.
	KindHidden DependencyKind = "hidden"
)

// ParseKind validates a raw kind string from a manifest. The empty string
// defaults to runtime, matching what resolvers emit for plain edges.
func ParseKind(raw string) (DependencyKind, error) {
	switch DependencyKind(raw) {
	case KindRuntime, KindBuild, KindHidden:
		return DependencyKind(raw), nil
	case "":
		return KindRuntime, nil
	default:
		return "", fmt.Errorf("unknown dependency kind %q (expected runtime, build or hidden)", raw)
	}
}

// GatesOrdering is the single policy table mapping a dependency kind to
// whether it produces a `needs` edge on the dependent job. Hidden
// dependencies gate ordering by default: the scheduler must still have
// their artifacts on disk before the dependent builds. Setting
// orderHidden to false restores the permissive behavior.
func (k DependencyKind) GatesOrdering(orderHidden bool) bool {
	switch k {
	case KindRuntime, KindBuild:
		return true
	case KindHidden:
		return orderHidden
	default:
		return false
	}
}
