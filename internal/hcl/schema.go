package hcl

import "github.com/hashicorp/hcl/v2"

// planFile is the top-level structure of one plan file for decoding.
type planFile struct {
	Workflow  string           `hcl:"workflow,optional"`
	Output    string           `hcl:"output,optional"`
	Overrides []*overrideBlock `hcl:"override,block"`
	Nodes     []*nodeBlock     `hcl:"node,block"`
	Links     []*linkBlock     `hcl:"link,block"`
	Sets      []*setBlock      `hcl:"set,block"`
	Variants  []*variantBlock  `hcl:"variant,block"`
}

// overrideBlock rewrites a literal input on every node of a class:
//
//	override "UnetLoaderGGUF" {
//	  input = "unet_name"
//	  value = "model.gguf"
//	}
type overrideBlock struct {
	ClassType string         `hcl:"class_type,label"`
	Input     string         `hcl:"input"`
	Value     hcl.Expression `hcl:"value"`
}

// nodeBlock synthesizes a new node. Literal inputs come from the inputs
// attribute; linked inputs from nested link blocks.
//
//	node "negative" {
//	  class_type = "CLIPTextEncode"
//	  inputs     = { text = "" }
//	  link "clip" { from_class = "CLIPLoader" }
//	}
type nodeBlock struct {
	Name      string           `hcl:"name,label"`
	ClassType string           `hcl:"class_type"`
	Inputs    hcl.Expression   `hcl:"inputs,optional"`
	Links     []*nodeLinkBlock `hcl:"link,block"`
}

// nodeLinkBlock names the producer for one input of a synthesized node.
type nodeLinkBlock struct {
	Input     string `hcl:"input,label"`
	From      string `hcl:"from,optional"`
	FromClass string `hcl:"from_class,optional"`
	Slot      int    `hcl:"slot,optional"`
}

// linkBlock forces an edge on an existing node. The producer may be a plain
// node id or a synthesized node referenced as "@name".
//
//	link {
//	  node  = "28"
//	  input = "negative"
//	  from  = "@negative"
//	}
type linkBlock struct {
	Node  string `hcl:"node"`
	Input string `hcl:"input"`
	From  string `hcl:"from"`
	Slot  int    `hcl:"slot,optional"`
}

// setBlock overwrites a literal input on an existing node.
type setBlock struct {
	Node  string         `hcl:"node,label"`
	Input string         `hcl:"input"`
	Value hcl.Expression `hcl:"value"`
}

// variantBlock emits a restricted copy of the final graph.
type variantBlock struct {
	Name   string   `hcl:"name,label"`
	Keep   []string `hcl:"keep"`
	Output string   `hcl:"output"`
}
