package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/workflowc/internal/config"
	"github.com/vk/workflowc/internal/ctxlog"
	"github.com/vk/workflowc/internal/fsutil"
)

// Loader parses .hcl build plans into the agnostic config model. It
// implements config.Loader.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the plan file at path, or every .hcl file under it when path is
// a directory, and merges the results into one plan.
func (l *Loader) Load(ctx context.Context, path string) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading build plan.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat plan path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find plan files in %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .hcl plan files found in %s", path)
		}
	}

	parser := hclparse.NewParser()
	plan := &config.Plan{}
	for _, file := range files {
		if err := l.mergeFile(file, parser, plan); err != nil {
			return nil, err
		}
	}

	logger.Debug("Build plan loaded.",
		"files", len(files),
		"overrides", len(plan.Overrides),
		"nodes", len(plan.Nodes),
		"links", len(plan.Links),
		"variants", len(plan.Variants),
	)
	return plan, nil
}

// mergeFile parses a single plan file and folds its blocks into the plan.
// Block order within a file is preserved; for the scalar workflow and output
// attributes the last file that sets them wins.
func (l *Loader) mergeFile(path string, parser *hclparse.Parser, plan *config.Plan) error {
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse plan file %s: %w", path, diags)
	}

	var parsed planFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode plan file %s: %w", path, diags)
	}

	if parsed.Workflow != "" {
		plan.WorkflowPath = parsed.Workflow
	}
	if parsed.Output != "" {
		plan.OutputPath = parsed.Output
	}

	for _, b := range parsed.Overrides {
		ov, err := translateOverride(b)
		if err != nil {
			return fmt.Errorf("in plan file %s: %w", path, err)
		}
		plan.Overrides = append(plan.Overrides, ov)
	}
	for _, b := range parsed.Nodes {
		spec, err := translateNode(b)
		if err != nil {
			return fmt.Errorf("in plan file %s: %w", path, err)
		}
		plan.Nodes = append(plan.Nodes, spec)
	}
	for _, b := range parsed.Links {
		plan.Links = append(plan.Links, &config.LinkSpec{
			Node:  b.Node,
			Input: b.Input,
			From:  b.From,
			Slot:  b.Slot,
		})
	}
	for _, b := range parsed.Sets {
		set, err := translateSet(b)
		if err != nil {
			return fmt.Errorf("in plan file %s: %w", path, err)
		}
		plan.Sets = append(plan.Sets, set)
	}
	for _, b := range parsed.Variants {
		plan.Variants = append(plan.Variants, &config.Variant{
			Name:   b.Name,
			Keep:   b.Keep,
			Output: b.Output,
		})
	}
	return nil
}
