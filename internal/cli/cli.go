package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/servermap/servermap/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly (help
// requested or nothing to do), or an ExitError for usage mistakes.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("servermap", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
servermap - infers the data-flow graph between servers from their config files.

Usage:
  servermap -env <environment.yaml> [options] <server-config>...
  (-e is accepted as a shorthand for -env)

Arguments:
  <server-config>...
    Glob patterns, file paths, or directories of per-server .conf/.hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	envFlag := flagSet.String("env", "", "Path to the environment registry file.")
	eFlag := flagSet.String("e", "", "Path to the environment registry file (shorthand).")
	outputFlag := flagSet.String("o", "graph.png", "Path for the rendered graph image.")
	jsonFlag := flagSet.String("json", "", "Optional path for the architecture JSON export.")
	summaryFlag := flagSet.Bool("summary", false, "Print a summary table of nodes, edges, and diagnostics.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	envPath := *envFlag
	if envPath == "" {
		envPath = *eFlag
	}
	if envPath == "" && flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		EnvironmentPath: envPath,
		ServerGlobs:     flagSet.Args(),
		OutputPath:      *outputFlag,
		JSONPath:        *jsonFlag,
		Summary:         *summaryFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
