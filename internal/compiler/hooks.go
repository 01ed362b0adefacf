package compiler

import (
	"context"
	"sort"
	"strconv"

	"github.com/vk/workflowc/internal/ctxlog"
	"github.com/vk/workflowc/internal/prompt"
)

// OverrideClassInput overwrites the named literal input on every node of the
// given class type. Nodes of the class that never bound that input are left
// alone: the hook swaps values, it does not invent bindings.
func OverrideClassInput(ctx context.Context, g prompt.Graph, classType, input string, value any) {
	logger := ctxlog.FromContext(ctx)
	for id, node := range g {
		if node.ClassType != classType {
			continue
		}
		if _, bound := node.Inputs[input]; !bound {
			continue
		}
		logger.Debug("Overriding class input.", "node_id", id, "class_type", classType, "input", input)
		node.Inputs[input] = value
	}
}

// FindByClass returns the id of the node with the given class type. When
// several nodes share the class, the lowest id wins, so repeated builds of
// the same document resolve identically.
func FindByClass(g prompt.Graph, classType string) (string, bool) {
	ids := make([]string, 0, len(g))
	for id, node := range g {
		if node.ClassType == classType {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return "", false
	}
	sort.Slice(ids, func(i, j int) bool {
		a, aErr := strconv.ParseInt(ids[i], 10, 64)
		b, bErr := strconv.ParseInt(ids[j], 10, 64)
		if aErr == nil && bErr == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
	return ids[0], true
}
