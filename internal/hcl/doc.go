// Package hcl loads build plans written in HCL and translates them into the
// format-agnostic config model. A plan path may be one .hcl file or a
// directory searched recursively; blocks from all discovered files merge into
// a single plan.
package hcl
