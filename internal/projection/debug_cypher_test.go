package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohankatakam/memoria-retrieve/internal/graph"
	"github.com/rohankatakam/memoria-retrieve/internal/retrieval"
)

func TestToDebugCypher_SingleQuotesLiterals(t *testing.T) {
	dc := ToDebugCypher(sampleResult())
	require.Len(t, dc.IndividualPaths, 1)
	assert.Contains(t, dc.IndividualPaths[0], "{id: 'N1'}")
	assert.Contains(t, dc.IndividualPaths[0], "{id: 'N2'}")
	assert.Contains(t, dc.IndividualPaths[0], "-[:RELATES]-")
}

func TestToDebugCypher_CombinedIsUnionOfIndividual(t *testing.T) {
	result := sampleResult()
	result.Paths = append(result.Paths, result.Paths[0])
	dc := ToDebugCypher(result)
	require.Len(t, dc.IndividualPaths, 2)
	assert.Contains(t, dc.PathsCombined, "\nUNION\n")
}

func TestCypherStringLiteral_EscapesQuotesAndBackslashes(t *testing.T) {
	got := cypherStringLiteral(`O'Brien\path`)
	assert.Equal(t, `'O\'Brien\\path'`, got)
}

func TestToDebugCypher_S1ScenarioLiteral(t *testing.T) {
	// For the single-depth ordering scenario, path 0 lands
	// on T3002; the rendered MATCH must be exactly this string.
	weight := 0.80
	seed := &graph.Node{ID: "T3000"}
	neighbor := &graph.Node{ID: "T3002"}
	edge := &graph.Edge{ID: "E7002", Type: "RELATES", SourceID: "T3000", TargetID: "T3002", Weight: &weight}

	result := retrieval.Result{
		SeedID:   "T3000",
		SeedNode: seed,
		Paths: []retrieval.Path{
			{
				Steps:       []retrieval.Step{{Node: neighbor, Edge: edge, TransferEnergy: 0.4}},
				Depth:       1,
				FinalEnergy: 0.4,
			},
		},
	}

	dc := ToDebugCypher(result)
	require.Len(t, dc.IndividualPaths, 1)
	assert.Equal(t, `MATCH p0 = (n0_0 {id: 'T3000'})-[:RELATES]-(n0_1 {id: 'T3002'}) RETURN p0`, dc.IndividualPaths[0])
}

func TestToDebugCypher_EmptyResult(t *testing.T) {
	dc := ToDebugCypher(retrieval.Result{SeedID: "N1"})
	assert.Empty(t, dc.IndividualPaths)
	assert.Equal(t, "", dc.PathsCombined)
}
