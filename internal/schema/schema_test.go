package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowDecode(t *testing.T) {
	doc := `{
		"nodes": [
			{
				"id": 1,
				"type": "TypeA",
				"inputs": [
					{"name": "x", "widget": {"name": "x"}},
					{"name": "y", "link": 10}
				],
				"widgets_values": [5]
			}
		],
		"links": [[10, 2, 0, 1, 1, "LATENT"]]
	}`

	var wf Workflow
	require.NoError(t, json.Unmarshal([]byte(doc), &wf))

	require.Len(t, wf.Nodes, 1)
	node := wf.Nodes[0]
	assert.Equal(t, int64(1), node.ID)
	assert.Equal(t, "TypeA", node.Type)

	require.Len(t, node.Inputs, 2)
	assert.True(t, node.Inputs[0].HasWidget())
	assert.Nil(t, node.Inputs[0].Link)
	assert.False(t, node.Inputs[1].HasWidget())
	require.NotNil(t, node.Inputs[1].Link)
	assert.Equal(t, int64(10), *node.Inputs[1].Link)

	require.Len(t, wf.Links, 1)
	link := wf.Links[0]
	assert.Equal(t, int64(10), link.ID)
	assert.Equal(t, int64(2), link.Producer)
	assert.Equal(t, 0, link.ProducerSlot)
	assert.Equal(t, int64(1), link.Consumer)
	assert.Equal(t, 1, link.ConsumerSlot)
}

func TestLinkDecodeErrors(t *testing.T) {
	t.Run("too few elements", func(t *testing.T) {
		var l Link
		err := json.Unmarshal([]byte(`[10, 2, 0]`), &l)
		assert.ErrorContains(t, err, "want at least 5")
	})

	t.Run("non-numeric element", func(t *testing.T) {
		var l Link
		err := json.Unmarshal([]byte(`[10, "2", 0, 1, 0]`), &l)
		assert.ErrorContains(t, err, "want a number")
	})
}

func TestLinkTableIndex(t *testing.T) {
	table := LinkTable{
		{ID: 10, Producer: 1},
		{ID: 12, Producer: 3},
	}
	idx := table.Index()
	require.Len(t, idx, 2)
	assert.Equal(t, int64(3), idx[12].Producer)
	_, ok := idx[99]
	assert.False(t, ok)
}

func TestWidgetValuesShapes(t *testing.T) {
	t.Run("positional array", func(t *testing.T) {
		var w WidgetValues
		require.NoError(t, json.Unmarshal([]byte(`[5, "euler", true]`), &w))
		assert.True(t, w.Positional())
		assert.Equal(t, 3, w.Len())

		v, ok := w.At(1)
		require.True(t, ok)
		assert.Equal(t, "euler", v)

		_, ok = w.At(3)
		assert.False(t, ok)
		_, ok = w.At(-1)
		assert.False(t, ok)
	})

	t.Run("keyed object", func(t *testing.T) {
		var w WidgetValues
		require.NoError(t, json.Unmarshal([]byte(`{"steps": 20, "text": "hi"}`), &w))
		assert.False(t, w.Positional())

		v, ok := w.Named("steps")
		require.True(t, ok)
		assert.Equal(t, float64(20), v)

		_, ok = w.Named("missing")
		assert.False(t, ok)
	})

	t.Run("null binds nothing", func(t *testing.T) {
		var w WidgetValues
		require.NoError(t, json.Unmarshal([]byte(`null`), &w))
		assert.False(t, w.Positional())
		assert.Equal(t, 0, w.Len())
	})

	t.Run("scalar is rejected", func(t *testing.T) {
		var w WidgetValues
		err := json.Unmarshal([]byte(`42`), &w)
		assert.ErrorContains(t, err, "array or an object")
	})

	t.Run("round trip keeps shape", func(t *testing.T) {
		data, err := json.Marshal(PositionalValues(1, 2))
		require.NoError(t, err)
		assert.JSONEq(t, `[1, 2]`, string(data))

		data, err = json.Marshal(KeyedValues(map[string]any{"a": 1}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 1}`, string(data))
	})
}

func TestInputHasWidget(t *testing.T) {
	assert.False(t, (&Input{Name: "a"}).HasWidget())
	assert.False(t, (&Input{Name: "a", Widget: json.RawMessage(`null`)}).HasWidget())
	assert.True(t, (&Input{Name: "a", Widget: json.RawMessage(`{"name":"a"}`)}).HasWidget())
}
