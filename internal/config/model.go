package config

// Plan is the unified representation of one build: which workflow document to
// compile, how to patch the compiled graph, and which variants to emit.
type Plan struct {
	WorkflowPath string
	OutputPath   string

	Overrides []*Override
	Nodes     []*NodeSpec
	Links     []*LinkSpec
	Sets      []*SetSpec
	Variants  []*Variant
}

// Override rewrites a literal input on every node of a class after
// compilation, without touching the resolver.
type Override struct {
	ClassType string
	Input     string
	Value     any
}

// NodeSpec injects a new node into the compiled graph. Its numeric id is
// allocated at build time; Name is how later link specs refer to it.
type NodeSpec struct {
	Name      string
	ClassType string
	Inputs    map[string]any
	Links     []*NodeLink
}

// NodeLink binds an input of a synthesized node to a producer located at
// build time: either an explicit node id or the first node of a class.
// Exactly one of From and FromClass is set.
type NodeLink struct {
	Input     string
	From      string
	FromClass string
	Slot      int
}

// LinkSpec forces an edge on an existing node, overriding whatever the
// automatic link resolution produced. This is how wiring conventions that
// never appear in the raw link table are expressed. From may name a
// synthesized node as "@name".
type LinkSpec struct {
	Node  string
	Input string
	From  string
	Slot  int
}

// SetSpec overwrites a literal input on an existing node.
type SetSpec struct {
	Node  string
	Input string
	Value any
}

// Variant emits a restricted copy of the final graph to its own output path.
type Variant struct {
	Name   string
	Keep   []string
	Output string
}
