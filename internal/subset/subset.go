// Package subset derives restricted variants of a compiled graph by node-id
// selection.
package subset

import (
	"context"

	"github.com/vk/workflowc/internal/ctxlog"
	"github.com/vk/workflowc/internal/prompt"
)

// Extract returns a new graph containing exactly the nodes whose ids are in
// keep. Any input referencing a producer outside the keep set is dropped from
// the surviving node; literal inputs pass through untouched. Keep ids with no
// matching node are ignored, since one keep set may be shared across variant
// documents that carry different nodes.
//
// The result never contains a dangling reference, but it may be semantically
// incomplete: a node can lose a required input. Choosing a keep set that
// leaves every required input bound is the caller's responsibility.
func Extract(ctx context.Context, g prompt.Graph, keep []string) prompt.Graph {
	logger := ctxlog.FromContext(ctx)

	kept := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		kept[id] = struct{}{}
	}

	out := make(prompt.Graph, len(kept))
	for id, node := range g {
		if _, ok := kept[id]; !ok {
			continue
		}
		trimmed := &prompt.Node{
			ClassType: node.ClassType,
			Inputs:    make(map[string]any, len(node.Inputs)),
		}
		for name, v := range node.Inputs {
			if ref, isRef := prompt.AsReference(v); isRef {
				if _, retained := kept[ref.NodeID]; !retained {
					logger.Debug("Dropping input bound outside the keep set.",
						"node_id", id, "input", name, "producer", ref.NodeID)
					continue
				}
			}
			trimmed.Inputs[name] = v
		}
		out[id] = trimmed
	}
	return out
}
