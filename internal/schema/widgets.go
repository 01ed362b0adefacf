package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// WidgetValues is the polymorphic widget literal source attached to a node.
// The editor emits either a positional array or a name-keyed object; both
// shapes are accepted and queried through the same methods.
type WidgetValues struct {
	list  []any
	keyed map[string]any
}

// PositionalValues constructs a WidgetValues backed by an ordered array.
func PositionalValues(vals ...any) WidgetValues {
	if vals == nil {
		vals = []any{}
	}
	return WidgetValues{list: vals}
}

// KeyedValues constructs a WidgetValues backed by a name-keyed mapping.
func KeyedValues(m map[string]any) WidgetValues {
	return WidgetValues{keyed: m}
}

// UnmarshalJSON sniffs the document shape and decodes accordingly. A missing
// or null value leaves the receiver empty, which binds nothing.
func (w *WidgetValues) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		return nil
	case trimmed[0] == '[':
		return json.Unmarshal(data, &w.list)
	case trimmed[0] == '{':
		return json.Unmarshal(data, &w.keyed)
	default:
		return fmt.Errorf("widgets_values must be an array or an object")
	}
}

// MarshalJSON emits whichever shape the value was built from.
func (w WidgetValues) MarshalJSON() ([]byte, error) {
	if w.list != nil {
		return json.Marshal(w.list)
	}
	if w.keyed != nil {
		return json.Marshal(w.keyed)
	}
	return []byte("null"), nil
}

// Positional reports whether values are supplied as an ordered array.
func (w *WidgetValues) Positional() bool {
	return w.list != nil
}

// Len returns the number of positional values.
func (w *WidgetValues) Len() int {
	return len(w.list)
}

// At returns the positional value at index i.
func (w *WidgetValues) At(i int) (any, bool) {
	if i < 0 || i >= len(w.list) {
		return nil, false
	}
	return w.list[i], true
}

// Named returns the value stored under the given widget name.
func (w *WidgetValues) Named(name string) (any, bool) {
	v, ok := w.keyed[name]
	return v, ok
}
