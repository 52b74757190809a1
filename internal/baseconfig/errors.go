package baseconfig

import (
	"fmt"
	"strings"
)

// NotFoundError reports a base configuration file missing at the expected
// location. Distinct from a present-but-empty file, which loads as empty
// defaults and variables.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("base configuration not found at %q", e.Path)
}

// ParseError reports base configuration that exists but is not valid YAML
// or does not match the expected structure.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed base configuration %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CircularVariableError reports a trigger-job variable that references
// itself, directly or through a chain. Cycle holds the variable names of
// the minimal cycle in reference order.
type CircularVariableError struct {
	Cycle []string
}

func (e *CircularVariableError) Error() string {
	return fmt.Sprintf("circular variable reference: %s", strings.Join(e.Cycle, " -> "))
}
