// Package patch applies ordered edit batches to a compiled graph. Edits run
// in list order against a copy of the input, so later edits may reference
// nodes inserted by earlier ones and the original graph is never mutated.
// The engine does not validate producer slots: explicit wiring is the
// caller's statement of intent.
package patch

import (
	"context"
	"fmt"

	"github.com/vk/workflowc/internal/ctxlog"
	"github.com/vk/workflowc/internal/prompt"
)

// Edit is a single mutation within a batch.
type Edit interface {
	apply(ctx context.Context, g prompt.Graph) error
}

// SetLink points the named input of a node at a producer's output slot,
// replacing whatever binding the input held. A target node absent from the
// graph is skipped rather than rejected: one batch may be shared across
// variants that do not all carry the same nodes.
type SetLink struct {
	Node  string
	Input string
	From  string
	Slot  int
}

func (e SetLink) apply(ctx context.Context, g prompt.Graph) error {
	node, ok := g[e.Node]
	if !ok {
		ctxlog.FromContext(ctx).Debug("SetLink target absent, skipping.", "node_id", e.Node, "input", e.Input)
		return nil
	}
	node.Inputs[e.Input] = prompt.Reference{NodeID: e.From, Slot: e.Slot}
	return nil
}

// SetLiteral overwrites the named input with a literal value. Absent targets
// are skipped, as with SetLink.
type SetLiteral struct {
	Node  string
	Input string
	Value any
}

func (e SetLiteral) apply(ctx context.Context, g prompt.Graph) error {
	node, ok := g[e.Node]
	if !ok {
		ctxlog.FromContext(ctx).Debug("SetLiteral target absent, skipping.", "node_id", e.Node, "input", e.Input)
		return nil
	}
	node.Inputs[e.Input] = e.Value
	return nil
}

// InsertNode adds a new node under the given id with the given initial
// inputs. A colliding id is fatal and rejects the whole batch.
type InsertNode struct {
	ID        string
	ClassType string
	Inputs    map[string]any
}

func (e InsertNode) apply(ctx context.Context, g prompt.Graph) error {
	if _, exists := g[e.ID]; exists {
		return fmt.Errorf("insert node: id %q already present", e.ID)
	}
	inputs := make(map[string]any, len(e.Inputs))
	for k, v := range e.Inputs {
		inputs[k] = v
	}
	g[e.ID] = &prompt.Node{ClassType: e.ClassType, Inputs: inputs}
	ctxlog.FromContext(ctx).Debug("Inserted node.", "node_id", e.ID, "class_type", e.ClassType)
	return nil
}

// Apply runs the edits in order against a copy of the graph and returns the
// copy. On a fatal edit the copy is discarded and no partial result is
// returned.
func Apply(ctx context.Context, g prompt.Graph, edits []Edit) (prompt.Graph, error) {
	out := g.Clone()
	for i, e := range edits {
		if err := e.apply(ctx, out); err != nil {
			return nil, fmt.Errorf("edit %d: %w", i, err)
		}
	}
	return out, nil
}
