package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/workflowc/internal/ctxlog"
	"github.com/vk/workflowc/internal/prompt"
)

// writeGraph encodes a compiled graph as an indented JSON document.
func writeGraph(ctx context.Context, path string, g prompt.Graph) error {
	logger := ctxlog.FromContext(ctx)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("failed to encode graph for %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("Wrote compiled graph.", "path", path, "node_count", len(g))
	return nil
}
