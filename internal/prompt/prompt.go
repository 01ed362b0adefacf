// Package prompt defines the flattened graph produced by the compiler: a map
// of string node ids to nodes whose inputs are either resolved literals or
// references to a producer node's output slot.
package prompt

import (
	"encoding/json"
	"math"
	"strconv"
)

// Reference points a consumer input at a producer node's output slot. On the
// wire it is encoded as a two-element array [producer id, slot], which is the
// contract that distinguishes a reference from a literal.
type Reference struct {
	NodeID string
	Slot   int
}

// MarshalJSON emits the two-element array wire form.
func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.NodeID, r.Slot})
}

// AsReference reports whether a value is a reference, either the tagged
// in-memory form or the decoded [string, integer] wire shape. A literal that
// happens to share the wire shape is indistinguishable from a reference in a
// decoded document; in-memory, the tagged type removes the ambiguity.
func AsReference(v any) (Reference, bool) {
	switch ref := v.(type) {
	case Reference:
		return ref, true
	case []any:
		if len(ref) != 2 {
			return Reference{}, false
		}
		id, ok := ref[0].(string)
		if !ok {
			return Reference{}, false
		}
		slot, ok := ref[1].(float64)
		if !ok || slot != math.Trunc(slot) {
			return Reference{}, false
		}
		return Reference{NodeID: id, Slot: int(slot)}, true
	}
	return Reference{}, false
}

// Node is a single compiled node: its class tag plus the resolved inputs.
type Node struct {
	ClassType string         `json:"class_type"`
	Inputs    map[string]any `json:"inputs"`
}

// UnmarshalJSON decodes a compiled node, promoting input values with the
// reference wire shape to tagged References.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw struct {
		ClassType string         `json:"class_type"`
		Inputs    map[string]any `json:"inputs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.ClassType = raw.ClassType
	n.Inputs = make(map[string]any, len(raw.Inputs))
	for name, v := range raw.Inputs {
		if ref, ok := AsReference(v); ok {
			n.Inputs[name] = ref
		} else {
			n.Inputs[name] = v
		}
	}
	return nil
}

// Clone returns a copy of the node with a fresh inputs map. Input values are
// shared: transforms replace map entries, they never mutate values in place.
func (n *Node) Clone() *Node {
	inputs := make(map[string]any, len(n.Inputs))
	for k, v := range n.Inputs {
		inputs[k] = v
	}
	return &Node{ClassType: n.ClassType, Inputs: inputs}
}

// Graph maps string node ids to compiled nodes. Key order carries no meaning.
type Graph map[string]*Node

// Clone returns a copy of the graph with fresh nodes, so that edits to the
// copy never show through to the original.
func (g Graph) Clone() Graph {
	out := make(Graph, len(g))
	for id, n := range g {
		out[id] = n.Clone()
	}
	return out
}

// NextID returns the string form of the numeric successor of the highest
// numeric node id present in the graph. Non-numeric ids are ignored.
func (g Graph) NextID() string {
	var max int64
	for id := range g {
		if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > max {
			max = n
		}
	}
	return strconv.FormatInt(max+1, 10)
}
