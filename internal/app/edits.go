package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/workflowc/internal/compiler"
	"github.com/vk/workflowc/internal/patch"
	"github.com/vk/workflowc/internal/prompt"
)

// buildEdits translates the plan's node, link, and set specs into one patch
// batch. Ids for synthesized nodes are allocated here, counting up from the
// numeric successor of the graph's highest id, and later specs can name them
// as "@name".
func (a *App) buildEdits(ctx context.Context, graph prompt.Graph) ([]patch.Edit, error) {
	aliases := make(map[string]string, len(a.plan.Nodes))
	var edits []patch.Edit

	base, err := strconv.ParseInt(graph.NextID(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate node ids: %w", err)
	}

	for i, spec := range a.plan.Nodes {
		id := strconv.FormatInt(base+int64(i), 10)
		if _, taken := aliases[spec.Name]; taken {
			return nil, fmt.Errorf("duplicate node name %q in plan", spec.Name)
		}
		aliases[spec.Name] = id

		inputs := make(map[string]any, len(spec.Inputs)+len(spec.Links))
		for k, v := range spec.Inputs {
			inputs[k] = v
		}
		for _, nl := range spec.Links {
			producer, err := resolveProducer(graph, aliases, nl.From, nl.FromClass)
			if err != nil {
				return nil, fmt.Errorf("node %q input %q: %w", spec.Name, nl.Input, err)
			}
			inputs[nl.Input] = prompt.Reference{NodeID: producer, Slot: nl.Slot}
		}
		edits = append(edits, patch.InsertNode{ID: id, ClassType: spec.ClassType, Inputs: inputs})
	}

	for _, ls := range a.plan.Links {
		from, err := resolveProducer(graph, aliases, ls.From, "")
		if err != nil {
			return nil, fmt.Errorf("link on node %q input %q: %w", ls.Node, ls.Input, err)
		}
		edits = append(edits, patch.SetLink{Node: ls.Node, Input: ls.Input, From: from, Slot: ls.Slot})
	}

	for _, ss := range a.plan.Sets {
		edits = append(edits, patch.SetLiteral{Node: ss.Node, Input: ss.Input, Value: ss.Value})
	}

	return edits, nil
}

// resolveProducer turns a plan-level producer name into a node id. A from
// value of "@name" resolves through the alias table; fromClass resolves to
// the first node of that class in the compiled graph.
func resolveProducer(graph prompt.Graph, aliases map[string]string, from, fromClass string) (string, error) {
	if fromClass != "" {
		id, ok := compiler.FindByClass(graph, fromClass)
		if !ok {
			return "", fmt.Errorf("no node of class %q in the compiled graph", fromClass)
		}
		return id, nil
	}
	if name, isAlias := strings.CutPrefix(from, "@"); isAlias {
		id, ok := aliases[name]
		if !ok {
			return "", fmt.Errorf("unknown node name %q; node blocks must precede the links that use them", name)
		}
		return id, nil
	}
	return from, nil
}
