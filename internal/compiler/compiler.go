// Package compiler flattens a raw workflow document into the execution-ready
// prompt form. Linked inputs become explicit references into the producer's
// output slots; widget-capable inputs are bound from the node's widget
// values, consulting the override registry for classes whose widget order
// diverges from declared input order.
package compiler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/workflowc/internal/ctxlog"
	"github.com/vk/workflowc/internal/prompt"
	"github.com/vk/workflowc/internal/registry"
	"github.com/vk/workflowc/internal/schema"
)

// Compile builds the flattened graph from a raw workflow. The workflow is
// read-only input; the returned graph is freshly allocated. A link id with no
// entry in the link table is fatal: a dangling link means the document itself
// is malformed, and no partial output is returned.
func Compile(ctx context.Context, wf *schema.Workflow, reg *registry.Registry) (prompt.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compile: starting flatten pass.", "node_count", len(wf.Nodes), "link_count", len(wf.Links))

	links := wf.Links.Index()
	out := make(prompt.Graph, len(wf.Nodes))
	for _, raw := range wf.Nodes {
		node, err := compileNode(raw, links, reg)
		if err != nil {
			return nil, fmt.Errorf("node %d (%s): %w", raw.ID, raw.Type, err)
		}
		out[strconv.FormatInt(raw.ID, 10)] = node
	}

	logger.Debug("Compile: flatten pass complete.")
	return out, nil
}

// compileNode resolves every declared input of one raw node. A nil registry
// compiles with no override tables.
func compileNode(raw *schema.Node, links map[int64]*schema.Link, reg *registry.Registry) (*prompt.Node, error) {
	node := &prompt.Node{
		ClassType: raw.Type,
		Inputs:    make(map[string]any, len(raw.Inputs)),
	}

	widgets := &raw.WidgetsValues
	var overrides registry.Overrides
	if reg != nil {
		overrides, _ = reg.Lookup(raw.Type)
	}

	// cursor walks the positional widget array in declared-input order. It
	// advances once per widget-capable port, linked or not, so that later
	// positional lookups stay aligned with the array.
	cursor := 0
	for _, in := range raw.Inputs {
		if in.Link != nil {
			l, ok := links[*in.Link]
			if !ok {
				return nil, fmt.Errorf("input %q references unknown link %d", in.Name, *in.Link)
			}
			node.Inputs[in.Name] = prompt.Reference{
				NodeID: strconv.FormatInt(l.Producer, 10),
				Slot:   l.ProducerSlot,
			}
			if in.HasWidget() && widgets.Positional() {
				cursor++
			}
			continue
		}

		if !in.HasWidget() {
			// Neither linked nor widget-backed: the input is omitted.
			continue
		}

		// Override tables index into the positional array, so they only
		// apply to that shape. They bypass the cursor entirely.
		if slot, ok := overrides[in.Name]; ok && widgets.Positional() {
			if v, present := widgets.At(slot.Index); present {
				node.Inputs[in.Name] = v
			} else {
				node.Inputs[in.Name] = slot.Default
			}
			continue
		}

		if widgets.Positional() {
			// Past the end of the array the input is simply omitted,
			// but the cursor still advances.
			if v, ok := widgets.At(cursor); ok {
				node.Inputs[in.Name] = v
			}
			cursor++
			continue
		}
		if v, ok := widgets.Named(in.Name); ok {
			node.Inputs[in.Name] = v
		}
	}

	return node, nil
}
