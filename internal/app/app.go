package app

import (
	"io"
	"log/slog"
)

// App bundles the writer and logger one invocation works with. It holds no
// state across invocations: Generate and Inject take all their data as
// arguments and return everything as results.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp constructs an App with its own isolated logger. Log output goes
// to errW so the summary on outW stays machine-readable.
func NewApp(outW, errW io.Writer, config *Config) *App {
	return &App{
		outW:   outW,
		errW:   errW,
		logger: newLogger(config.LogLevel, config.LogFormat, errW),
		config: config,
	}
}
