// Package app wires the compile, patch, and variant-extraction pipeline
// together behind a single Run entry point.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/workflowc/internal/config"
	"github.com/vk/workflowc/internal/ctxlog"
	"github.com/vk/workflowc/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	plan     *config.Plan
	registry *registry.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. A plan that cannot
// be loaded is a fatal startup error and panics; the CLI entry point recovers
// it into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	plan, err := loader.Load(ctx, appConfig.PlanPath)
	if err != nil {
		panic(fmt.Errorf("failed to load build plan: %w", err))
	}

	// CLI paths win over the plan's own attributes.
	if appConfig.WorkflowPath != "" {
		plan.WorkflowPath = appConfig.WorkflowPath
	}
	if appConfig.OutputPath != "" {
		plan.OutputPath = appConfig.OutputPath
	}
	logger.Debug("Build plan ready.", "workflow", plan.WorkflowPath, "output", plan.OutputPath)

	return &App{
		outW:     outW,
		logger:   logger,
		plan:     plan,
		registry: registry.Builtin(),
	}
}

// Plan returns the loaded build plan. This is primarily for testing.
func (a *App) Plan() *config.Plan {
	return a.plan
}
