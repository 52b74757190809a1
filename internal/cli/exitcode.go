package cli

import (
	"errors"

	"github.com/vk/gridci/internal/baseconfig"
	"github.com/vk/gridci/internal/compiler"
	"github.com/vk/gridci/internal/manifest"
)

// Exit codes per error category. Each category gets its own code so the
// parent pipeline can branch on what went wrong without scraping stderr.
const (
	ExitOK            = 0
	ExitFailure       = 1 // I/O and anything unclassified
	ExitUsage         = 2
	ExitInput         = 3 // malformed or missing graph input
	ExitStructural    = 4 // cycles, dangling edges, collisions
	ExitConfiguration = 5 // base configuration problems
)

// ExitCode classifies an error from the command tree into a process exit
// code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var (
		loadErr      *manifest.LoadError
		emptyErr     *compiler.EmptyGraphError
		unknownErr   *compiler.UnknownDependencyError
		cycleErr     *compiler.CyclicDependencyError
		collisionErr *compiler.ArtifactCollisionError
		notFoundErr  *baseconfig.NotFoundError
		parseErr     *baseconfig.ParseError
		circularErr  *baseconfig.CircularVariableError
	)

	switch {
	case errors.As(err, &loadErr), errors.As(err, &emptyErr):
		return ExitInput
	case errors.As(err, &unknownErr), errors.As(err, &cycleErr), errors.As(err, &collisionErr):
		return ExitStructural
	case errors.As(err, &notFoundErr), errors.As(err, &parseErr), errors.As(err, &circularErr):
		return ExitConfiguration
	default:
		return ExitFailure
	}
}
