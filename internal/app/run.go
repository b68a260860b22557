package app

import (
	"context"
	"fmt"
	"os"

	"github.com/servermap/servermap/internal/ctxlog"
	"github.com/servermap/servermap/internal/fsutil"
	"github.com/servermap/servermap/internal/pipeline"
	"github.com/servermap/servermap/internal/render"
)

// Run executes the full analysis and writes every configured output. Fatal
// errors abort before any output is written; diagnostics are logged as
// warnings and do not affect the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Run started.", "environment", a.config.EnvironmentPath, "globs", a.config.ServerGlobs)

	var serverPaths []string
	if len(a.config.ServerGlobs) > 0 {
		var err error
		serverPaths, err = fsutil.ExpandGlobs(a.config.ServerGlobs)
		if err != nil {
			return err
		}
	}
	a.logger.Debug("Server config files discovered.", "count", len(serverPaths))

	result, err := pipeline.New().Run(ctx, a.config.EnvironmentPath, serverPaths)
	if err != nil {
		return err
	}

	for _, d := range result.Diagnostics {
		a.logger.Warn(d.String())
	}

	if err := render.WritePNG(ctx, result.Graph, a.config.OutputPath); err != nil {
		return err
	}
	a.logger.Info("Graph image written.", "path", a.config.OutputPath)

	if a.config.JSONPath != "" {
		f, err := os.Create(a.config.JSONPath)
		if err != nil {
			return fmt.Errorf("failed to create JSON export: %w", err)
		}
		defer f.Close()
		if err := render.WriteJSON(f, result.Graph); err != nil {
			return fmt.Errorf("failed to write JSON export: %w", err)
		}
		a.logger.Info("Architecture JSON written.", "path", a.config.JSONPath)
	}

	if a.config.Summary {
		render.WriteSummary(a.outW, result.Graph, result.Diagnostics)
	}

	a.logger.Debug("Run finished.")
	return nil
}
