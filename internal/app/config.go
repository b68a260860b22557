package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	// EnvironmentPath is the environment registry file.
	EnvironmentPath string
	// ServerGlobs are the glob patterns for per-server config files.
	ServerGlobs []string

	// OutputPath is the rendered image destination.
	OutputPath string
	// JSONPath, when set, receives the architecture JSON export.
	JSONPath string
	// Summary prints the node/edge summary table to stdout.
	Summary bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.EnvironmentPath == "" {
		return nil, errors.New("an environment file is required (-env)")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "graph.png"
	}
	return &cfg, nil
}
