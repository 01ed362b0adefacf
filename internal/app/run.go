package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/workflowc/internal/compiler"
	"github.com/vk/workflowc/internal/ctxlog"
	"github.com/vk/workflowc/internal/patch"
	"github.com/vk/workflowc/internal/schema"
	"github.com/vk/workflowc/internal/subset"
)

// Run executes the full pipeline: load the workflow, compile it, apply the
// plan's overrides and edits, then write the base document and every variant.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.plan.WorkflowPath == "" {
		return errors.New("no workflow document configured: set the plan's workflow attribute or pass -workflow")
	}
	if a.plan.OutputPath == "" && len(a.plan.Variants) == 0 {
		return errors.New("nothing to emit: the plan has no output attribute and no variant blocks")
	}

	wf, err := schema.LoadWorkflow(ctx, a.plan.WorkflowPath)
	if err != nil {
		return err
	}

	graph, err := compiler.Compile(ctx, wf, a.registry)
	if err != nil {
		return fmt.Errorf("failed to compile workflow: %w", err)
	}
	a.logger.Info("Workflow compiled.", "node_count", len(graph))

	for _, ov := range a.plan.Overrides {
		compiler.OverrideClassInput(ctx, graph, ov.ClassType, ov.Input, ov.Value)
	}

	edits, err := a.buildEdits(ctx, graph)
	if err != nil {
		return err
	}
	if len(edits) > 0 {
		graph, err = patch.Apply(ctx, graph, edits)
		if err != nil {
			return fmt.Errorf("failed to apply plan edits: %w", err)
		}
		a.logger.Info("Plan edits applied.", "edit_count", len(edits))
	}

	if a.plan.OutputPath != "" {
		if err := writeGraph(ctx, a.plan.OutputPath, graph); err != nil {
			return err
		}
	}

	for _, v := range a.plan.Variants {
		sub := subset.Extract(ctx, graph, v.Keep)
		a.logger.Info("Variant extracted.", "variant", v.Name, "node_count", len(sub))
		if err := writeGraph(ctx, v.Output, sub); err != nil {
			return fmt.Errorf("variant %q: %w", v.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
