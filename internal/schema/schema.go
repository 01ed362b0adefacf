// Package schema defines the raw workflow document model as exported by the
// graph editor: an ordered node list plus a global table of five-tuple links.
// The document is never mutated; the compiler reads it and emits a fresh
// flattened graph.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Workflow is the top-level structure of a raw workflow document.
type Workflow struct {
	Nodes []*Node   `json:"nodes"`
	Links LinkTable `json:"links"`
}

// Node is a single vertex of the raw graph.
type Node struct {
	ID            int64        `json:"id"`
	Type          string       `json:"type"`
	Inputs        []*Input     `json:"inputs"`
	WidgetsValues WidgetValues `json:"widgets_values"`
}

// Input is a declared input port on a raw node. A non-nil Link means the port
// is fed by another node through the global link table. The Widget field is
// kept as raw JSON because only its presence matters to the compiler: a
// widget-capable port owns a slot in the node's positional widget array even
// when it ends up linked.
type Input struct {
	Name   string          `json:"name"`
	Link   *int64          `json:"link"`
	Widget json.RawMessage `json:"widget"`
}

// HasWidget reports whether the port is widget-capable.
func (in *Input) HasWidget() bool {
	return len(in.Widget) > 0 && !bytes.Equal(bytes.TrimSpace(in.Widget), []byte("null"))
}

// Link is one entry of the global link table. The editor serializes it as an
// array of at least five elements:
// [id, producer, producerSlot, consumer, consumerSlot, ...].
// Trailing elements (the editor appends a type tag) are ignored.
type Link struct {
	ID           int64
	Producer     int64
	ProducerSlot int
	Consumer     int64
	ConsumerSlot int
}

// UnmarshalJSON decodes the positional tuple form.
func (l *Link) UnmarshalJSON(data []byte) error {
	var tuple []any
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) < 5 {
		return fmt.Errorf("link entry has %d elements, want at least 5", len(tuple))
	}
	nums := make([]float64, 5)
	for i := range nums {
		n, ok := tuple[i].(float64)
		if !ok {
			return fmt.Errorf("link entry element %d is %T, want a number", i, tuple[i])
		}
		nums[i] = n
	}
	l.ID = int64(nums[0])
	l.Producer = int64(nums[1])
	l.ProducerSlot = int(nums[2])
	l.Consumer = int64(nums[3])
	l.ConsumerSlot = int(nums[4])
	return nil
}

// LinkTable is the workflow's global link list.
type LinkTable []*Link

// Index builds a lookup table keyed by link id.
func (t LinkTable) Index() map[int64]*Link {
	idx := make(map[int64]*Link, len(t))
	for _, l := range t {
		idx[l.ID] = l
	}
	return idx
}
