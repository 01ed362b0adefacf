package patch

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/workflowc/internal/prompt"
)

func baseGraph() prompt.Graph {
	return prompt.Graph{
		"8": {ClassType: "KSampler", Inputs: map[string]any{
			"model": prompt.Reference{NodeID: "4", Slot: 0},
			"steps": float64(20),
		}},
		"9": {ClassType: "CLIPTextEncode", Inputs: map[string]any{"text": "hi"}},
	}
}

func TestSetLink(t *testing.T) {
	g := baseGraph()

	out, err := Apply(context.Background(), g, []Edit{
		SetLink{Node: "8", Input: "model", From: "32"},
	})
	require.NoError(t, err)

	assert.Equal(t, prompt.Reference{NodeID: "32", Slot: 0}, out["8"].Inputs["model"])
	// The original binding survives on the input graph.
	assert.Equal(t, prompt.Reference{NodeID: "4", Slot: 0}, g["8"].Inputs["model"])
}

func TestSetLinkMissingNodeIsNoOp(t *testing.T) {
	g := baseGraph()

	out, err := Apply(context.Background(), g, []Edit{
		SetLink{Node: "55", Input: "model", From: "32"},
		SetLiteral{Node: "55", Input: "steps", Value: 4},
	})
	require.NoError(t, err)

	if diff := cmp.Diff(g, out); diff != "" {
		t.Errorf("edits on absent nodes must change nothing:\n%s", diff)
	}
}

func TestSetLiteral(t *testing.T) {
	g := baseGraph()

	out, err := Apply(context.Background(), g, []Edit{
		SetLiteral{Node: "9", Input: "text", Value: "a calm beach"},
	})
	require.NoError(t, err)
	assert.Equal(t, "a calm beach", out["9"].Inputs["text"])
}

func TestEditIdempotence(t *testing.T) {
	g := baseGraph()
	edits := []Edit{
		SetLink{Node: "8", Input: "model", From: "32", Slot: 1},
		SetLiteral{Node: "9", Input: "text", Value: "x"},
	}

	once, err := Apply(context.Background(), g, edits)
	require.NoError(t, err)
	twice, err := Apply(context.Background(), once, edits)
	require.NoError(t, err)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("applying the same edits twice must be a fixed point:\n%s", diff)
	}
}

func TestInsertNode(t *testing.T) {
	g := baseGraph()

	out, err := Apply(context.Background(), g, []Edit{
		InsertNode{ID: "10", ClassType: "CLIPTextEncode", Inputs: map[string]any{"text": ""}},
	})
	require.NoError(t, err)

	require.Contains(t, out, "10")
	assert.Equal(t, "CLIPTextEncode", out["10"].ClassType)
	assert.Equal(t, "", out["10"].Inputs["text"])
	assert.NotContains(t, g, "10")
}

func TestInsertDuplicateIDRejectsBatch(t *testing.T) {
	g := baseGraph()

	out, err := Apply(context.Background(), g, []Edit{
		SetLiteral{Node: "9", Input: "text", Value: "changed"},
		InsertNode{ID: "9", ClassType: "Other"},
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, `id "9" already present`)
	assert.Nil(t, out, "a failed batch must not return partial output")
	assert.Equal(t, "hi", g["9"].Inputs["text"])
}

func TestLaterEditsSeeEarlierInserts(t *testing.T) {
	g := baseGraph()

	out, err := Apply(context.Background(), g, []Edit{
		InsertNode{ID: "10", ClassType: "CLIPTextEncode", Inputs: map[string]any{"text": ""}},
		SetLink{Node: "10", Input: "clip", From: "3"},
		SetLink{Node: "8", Input: "negative", From: "10"},
	})
	require.NoError(t, err)

	assert.Equal(t, prompt.Reference{NodeID: "3", Slot: 0}, out["10"].Inputs["clip"])
	assert.Equal(t, prompt.Reference{NodeID: "10", Slot: 0}, out["8"].Inputs["negative"])
}

func TestEmptyBatchReturnsEqualCopy(t *testing.T) {
	g := baseGraph()

	out, err := Apply(context.Background(), g, nil)
	require.NoError(t, err)

	if diff := cmp.Diff(g, out); diff != "" {
		t.Errorf("empty batch must return an equal graph:\n%s", diff)
	}
	out["8"].Inputs["steps"] = float64(1)
	assert.Equal(t, float64(20), g["8"].Inputs["steps"], "the copy must not alias the input")
}
