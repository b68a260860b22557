package app

import (
	"io"
	"log/slog"
)

// App wires the pipeline to its inputs and output sinks for one run.
type App struct {
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp constructs an application instance. outW receives user-facing
// output (the summary table); logW receives logs and warnings.
func NewApp(outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	return &App{
		outW:   outW,
		logW:   logW,
		logger: logger,
		config: config,
	}
}
