package retrieval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExploreSingle_SeedNotFound(t *testing.T) {
	store := newFakeStore()
	cfg := DefaultConfig()

	result, err := exploreSingle(context.Background(), store, Seed{NodeID: "missing", Score: 0.9}, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, TerminationSeedMissing, result.TerminatedReason)
	assert.Empty(t, result.Paths)
}

func TestExploreSingle_LinearChainReachesDepthCap(t *testing.T) {
	store := newFakeStore()
	store.addNode("A")
	store.addNode("B")
	store.addNode("C")
	store.addEdge("A", "B", 1.0, nil)
	store.addEdge("B", "C", 1.0, nil)

	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	cfg.MinActivation = 0

	result, err := exploreSingle(context.Background(), store, Seed{NodeID: "A", Score: 1.0}, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, TerminationComplete, result.TerminatedReason)
	require.Len(t, result.Paths, 1)
	assert.Equal(t, 2, result.Paths[0].Depth)
	assert.Equal(t, "C", result.Paths[0].Steps[1].Node.ID)
}

func TestExploreSingle_DeadEndTerminatesPathEarly(t *testing.T) {
	store := newFakeStore()
	store.addNode("A")
	store.addNode("B")
	store.addEdge("A", "B", 1.0, nil)

	cfg := DefaultConfig()
	cfg.MaxDepth = 5
	cfg.MinActivation = 0

	result, err := exploreSingle(context.Background(), store, Seed{NodeID: "A", Score: 1.0}, nil, cfg)
	require.NoError(t, err)
	require.Len(t, result.Paths, 1)
	assert.Equal(t, 1, result.Paths[0].Depth, "B has no further neighbors, path completes at depth 1")
}

func TestExploreSingle_BranchCapLimitsFanout(t *testing.T) {
	store := newFakeStore()
	store.addNode("A")
	for _, n := range []string{"B1", "B2", "B3", "B4"} {
		store.addNode(n)
		store.addEdge("A", n, 1.0, nil)
	}

	cfg := DefaultConfig()
	cfg.MaxBranches = 2
	cfg.MaxDepth = 1
	cfg.MinActivation = 0

	result, err := exploreSingle(context.Background(), store, Seed{NodeID: "A", Score: 1.0}, nil, cfg)
	require.NoError(t, err)
	assert.Len(t, result.Paths, 2, "branch cap should limit expansion to max_branches neighbors")
}

func TestExploreSingle_MinActivationPrunesWeakEdges(t *testing.T) {
	store := newFakeStore()
	store.addNode("A")
	store.addNode("B")
	store.addEdge("A", "B", 0.0001, nil)

	cfg := DefaultConfig()
	cfg.MinActivation = 0.5

	result, err := exploreSingle(context.Background(), store, Seed{NodeID: "A", Score: 1.0}, nil, cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Paths, "no path should complete when the only edge falls below min_activation")
}

func TestExploreSingle_ConvergingParentsDedupToOnePath(t *testing.T) {
	// A seeds two branches (B1, B2) which both reach the same neighbor C.
	// Only one of them should claim C; the other's branch dead-ends.
	store := newFakeStore()
	store.addNode("A")
	store.addNode("B1")
	store.addNode("B2")
	store.addNode("C")
	store.addEdge("A", "B1", 1.0, nil)
	store.addEdge("A", "B2", 1.0, nil)
	store.addEdge("B1", "C", 1.0, nil)
	store.addEdge("B2", "C", 1.0, nil)

	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	cfg.MaxBranches = 3
	cfg.MinActivation = 0

	result, err := exploreSingle(context.Background(), store, Seed{NodeID: "A", Score: 1.0}, nil, cfg)
	require.NoError(t, err)

	cCount := 0
	for _, p := range result.Paths {
		for _, step := range p.Steps {
			if step.Node.ID == "C" {
				cCount++
			}
		}
	}
	assert.Equal(t, 1, cCount, "C is reachable from both B1 and B2 but must appear in exactly one completed path")
}

func TestExploreSingle_NoRevisitingWithinSameExploration(t *testing.T) {
	store := newFakeStore()
	store.addNode("A")
	store.addNode("B")
	store.addNode("C")
	store.addEdge("A", "B", 1.0, nil)
	store.addEdge("B", "C", 1.0, nil)
	store.addEdge("C", "A", 1.0, nil) // cycle back to seed

	cfg := DefaultConfig()
	cfg.MaxDepth = 5
	cfg.MinActivation = 0

	result, err := exploreSingle(context.Background(), store, Seed{NodeID: "A", Score: 1.0}, nil, cfg)
	require.NoError(t, err)
	for _, p := range result.Paths {
		for _, step := range p.Steps {
			assert.NotEqual(t, "A", step.Node.ID, "the seed itself must never reappear as a visited step")
		}
	}
}
