package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohankatakam/memoria-retrieve/internal/graph"
	"github.com/rohankatakam/memoria-retrieve/internal/retrieval"
)

func sampleResult() retrieval.Result {
	weight := 0.73
	seed := &graph.Node{ID: "N1", Labels: []string{"AgentAnswer"}, Properties: map[string]any{"text": "seed text here"}}
	neighbor := &graph.Node{ID: "N2", Labels: []string{"Memory"}, Properties: map[string]any{"text": "neighbor text"}}
	edge := &graph.Edge{ID: "E1", Type: "RELATES", SourceID: "N1", TargetID: "N2", Weight: &weight, Tags: []string{"stockout"}}

	return retrieval.Result{
		SeedID:    "N1",
		SeedScore: 0.91,
		SeedNode:  seed,
		Paths: []retrieval.Path{
			{
				Steps: []retrieval.Step{
					{Node: neighbor, Edge: edge, TransferEnergy: 0.123456},
				},
				Depth:       1,
				FinalEnergy: 0.123456,
			},
		},
		MaxDepthReached:  1,
		TerminatedReason: retrieval.TerminationComplete,
	}
}

func TestToD3_IncludesSeedAndPathNodes(t *testing.T) {
	d3 := ToD3(sampleResult())
	require.Len(t, d3.Nodes, 2)

	byID := make(map[string]map[string]any)
	for _, n := range d3.Nodes {
		byID[n["id"].(string)] = n
	}
	assert.True(t, byID["N1"]["is_seed"].(bool))
	assert.Equal(t, 0.91, byID["N1"]["retrieval_activation"])
	assert.False(t, byID["N2"]["is_seed"].(bool))
	assert.InDelta(t, 0.123456, byID["N2"]["retrieval_activation"].(float64), 1e-9)
}

func TestToD3_EdgeRoundingAndWeight(t *testing.T) {
	d3 := ToD3(sampleResult())
	require.Len(t, d3.Edges, 1)
	e := d3.Edges[0]
	assert.Equal(t, 0.123, e["transfer_energy"])
	assert.Equal(t, 0.73, e["weight"])
	assert.Equal(t, []string{"stockout"}, e["tags"])
}

func TestToD3_EmptyResultIsWellFormed(t *testing.T) {
	d3 := ToD3(retrieval.Result{SeedID: "missing", TerminatedReason: retrieval.TerminationSeedMissing})
	assert.Empty(t, d3.Nodes)
	assert.Empty(t, d3.Edges)
}

func TestCleanText_ReplacesSmartPunctuation(t *testing.T) {
	got := cleanText("It’s a “test” – really — yes")
	assert.Equal(t, "It's a \"test\" - really -- yes", got)
}
