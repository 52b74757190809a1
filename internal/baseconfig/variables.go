package baseconfig

import (
	"regexp"
	"sort"

	"github.com/vk/gridci/internal/dag"
)

// varRefPattern matches `${NAME}` and `$NAME` placeholders inside a
// variable value.
var varRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// references extracts the variable names a value refers to, in order of
// appearance.
func references(value string) []string {
	var refs []string
	for _, m := range varRefPattern.FindAllStringSubmatch(value, -1) {
		if m[1] != "" {
			refs = append(refs, m[1])
		} else {
			refs = append(refs, m[2])
		}
	}
	return refs
}

// ValidateVariables rejects any variable that references itself, directly
// or through a chain of other variables. Expansion of such a chain is
// undefined at pipeline-execution time, so it must never reach the emitted
// document. References to names not defined in the map are fine: they
// resolve against the runner environment.
func ValidateVariables(variables map[string]string) error {
	// Deterministic graph construction so the reported cycle is stable.
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)

	g := dag.New()
	for _, name := range names {
		g.AddNode(name)
	}
	for _, name := range names {
		for _, ref := range references(variables[name]) {
			if ref == name {
				return &CircularVariableError{Cycle: []string{name}}
			}
			if _, defined := variables[ref]; !defined {
				continue
			}
			if err := g.AddEdge(name, ref); err != nil {
				return err
			}
		}
	}

	if cycle := g.FindCycle(); cycle != nil {
		return &CircularVariableError{Cycle: cycle}
	}
	return nil
}
