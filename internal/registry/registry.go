// Package registry holds the widget override tables consulted by the
// compiler. Some node classes serialize their widget array in an order that
// does not line up with declared input order; an override table pins each
// affected input to a fixed array index, with a fallback default for arrays
// too short to hold that index. Keeping the tables in one registry keeps
// class-tag comparisons out of the resolver and makes the rule set
// independently testable.
package registry

// Slot pins an input name to a widget array index. Default is the literal
// bound when the array does not reach that index.
type Slot struct {
	Index   int
	Default any
}

// Overrides maps input names to widget slots for one node class.
type Overrides map[string]Slot

// Registry maps node class tags to their override tables.
type Registry struct {
	classes map[string]Overrides
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{classes: make(map[string]Overrides)}
}

// Register installs or replaces the override table for a node class.
func (r *Registry) Register(classType string, ov Overrides) {
	r.classes[classType] = ov
}

// Lookup returns the override table for a node class, if one is registered.
func (r *Registry) Lookup(classType string) (Overrides, bool) {
	ov, ok := r.classes[classType]
	return ov, ok
}

// Builtin returns a registry preloaded with the tables for the stock node
// classes whose widget arrays interleave extra values.
func Builtin() *Registry {
	r := New()
	// The KSampler widget array carries the seed control mode at index 1,
	// which belongs to the editor UI rather than to any declared input.
	r.Register("KSampler", Overrides{
		"seed":         {Index: 0, Default: 0},
		"steps":        {Index: 2, Default: 4},
		"cfg":          {Index: 3, Default: 5},
		"sampler_name": {Index: 4, Default: "euler"},
		"scheduler":    {Index: 5, Default: "beta"},
		"denoise":      {Index: 6, Default: 1},
	})
	return r
}
