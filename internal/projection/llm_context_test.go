package projection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLLMContext_RendersOnePathLine(t *testing.T) {
	ctx := ToLLMContext(sampleResult())
	require.Len(t, ctx.Paths, 1)
	line := ctx.Paths[0]
	assert.True(t, strings.HasPrefix(line, "Path 1: [SEED]"))
	assert.Contains(t, line, "activation_score=0.123")
	assert.Contains(t, line, "weight=0.730")
}

func TestToLLMContext_NodeAttrsOmitIsSeed(t *testing.T) {
	ctx := ToLLMContext(sampleResult())
	for _, n := range ctx.NodeAndEdgeAttributes.Nodes {
		_, hasIsSeed := n["is_seed"]
		assert.False(t, hasIsSeed)
	}
}

func TestToLLMContext_EdgeAttrsUseNodeIDNaming(t *testing.T) {
	ctx := ToLLMContext(sampleResult())
	require.Len(t, ctx.NodeAndEdgeAttributes.Edges, 1)
	e := ctx.NodeAndEdgeAttributes.Edges[0]
	assert.Equal(t, "N1", e["source_node_id"])
	assert.Equal(t, "N2", e["target_node_id"])
	_, hasSource := e["source"]
	assert.False(t, hasSource)
}

func TestToLLMContext_MissingEdgeIDOmittedFromAttributesButKeptInPath(t *testing.T) {
	r := sampleResult()
	r.Paths[0].Steps[0].Edge.ID = ""

	ctx := ToLLMContext(r)
	assert.Empty(t, ctx.NodeAndEdgeAttributes.Edges)
	assert.Contains(t, ctx.Paths[0], "weight=0.730")
	assert.Contains(t, ctx.Paths[0], "activation_score=0.123")
}

func TestFirstWords_TruncatesLongText(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven twelve thirteen"
	got := firstWords(text, 12)
	assert.Equal(t, "one two three four five six seven eight nine ten eleven twelve...", got)
}

func TestFirstWords_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "short text", firstWords("short text", 12))
}
