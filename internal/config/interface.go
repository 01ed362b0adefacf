package config

import "context"

// Loader parses build plans from a concrete on-disk format into the agnostic
// model. Path may be a single plan file or a directory of plan files.
type Loader interface {
	Load(ctx context.Context, path string) (*Plan, error)
}
