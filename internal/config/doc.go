// Package config defines the format-agnostic build plan model.
//
// A plan names the workflow document to compile and everything to do with the
// result: class-wide input overrides, nodes to synthesize, edges to force,
// literals to overwrite, and the named variants to emit. The Loader interface
// decouples the plan's on-disk format from the application; the HCL loader is
// the only concrete implementation today.
package config
