package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// NewRootCommand builds the gridci command tree. All output is directed at
// the provided writers so tests can run commands hermetically.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "gridci",
		Short: "Generate GitLab CI child pipelines from resolved package graphs",
		Long: `gridci compiles a resolved package dependency graph into a GitLab CI
child pipeline with correct needs-ordering, then merges the externally
authored base configuration (tags, tokens, retry policy, shared
variables) into the generated document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	root.PersistentFlags().String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	root.AddCommand(newGenerateCommand(outW, errW))
	root.AddCommand(newInjectCommand(outW, errW))

	return root
}

// logFlags reads and validates the persistent logging flags.
func logFlags(cmd *cobra.Command) (format, level string, err error) {
	format, _ = cmd.Flags().GetString("log-format")
	format = strings.ToLower(format)
	if format != "text" && format != "json" {
		return "", "", &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	level, _ = cmd.Flags().GetString("log-level")
	level = strings.ToLower(level)
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return "", "", &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return format, level, nil
}

// isTruthy interprets the historical DRYRUN convention: 1, true and yes
// (any case) enable, everything else disables.
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
