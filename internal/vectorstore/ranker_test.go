package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedLinearFuse_CombinesOverlap(t *testing.T) {
	dense := []Hit{{NodeID: "A", Score: 0.8}, {NodeID: "B", Score: 0.5}}
	sparse := []Hit{{NodeID: "A", Score: 0.4}, {NodeID: "C", Score: 0.9}}

	fused := WeightedLinearFuse(dense, sparse, 0.6, 0.4)

	byID := make(map[string]float64, len(fused))
	for _, h := range fused {
		byID[h.NodeID] = h.Score
	}
	assert.InDelta(t, 0.8*0.6+0.4*0.4, byID["A"], 1e-9)
	assert.InDelta(t, 0.5*0.6, byID["B"], 1e-9)
	assert.InDelta(t, 0.9*0.4, byID["C"], 1e-9)
}

func TestWeightedLinearFuse_SortsDescending(t *testing.T) {
	dense := []Hit{{NodeID: "low", Score: 0.1}, {NodeID: "high", Score: 0.9}}
	fused := WeightedLinearFuse(dense, nil, 1.0, 1.0)
	assert.Equal(t, "high", fused[0].NodeID)
	assert.Equal(t, "low", fused[1].NodeID)
}

func TestWeightedLinearFuse_EmptyInputsYieldEmptyResult(t *testing.T) {
	fused := WeightedLinearFuse(nil, nil, 1.0, 1.0)
	assert.Empty(t, fused)
}
