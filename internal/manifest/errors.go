package manifest

import "fmt"

// LoadError wraps any failure to read, parse or validate the package-graph
// manifest, so callers can classify the whole family as malformed input
// without enumerating causes.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading manifest %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
