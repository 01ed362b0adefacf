package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/workflowc/internal/ctxlog"
)

// LoadWorkflow reads and decodes a raw workflow document from disk.
func LoadWorkflow(ctx context.Context, path string) (*Workflow, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading workflow document.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow document %s: %w", path, err)
	}

	var wf Workflow
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("failed to decode workflow document %s: %w", path, err)
	}

	logger.Debug("Workflow document loaded.", "node_count", len(wf.Nodes), "link_count", len(wf.Links))
	return &wf, nil
}
