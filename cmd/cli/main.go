package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/gridci/internal/cli"
)

// main is the entrypoint for the gridci application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	root := cli.NewRootCommand(outW, errW)
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetArgs(args)
	return root.Execute()
}
