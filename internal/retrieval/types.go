package retrieval

import "github.com/rohankatakam/memoria-retrieve/internal/graph"

// Seed is a starting point for exploration, produced by hybrid search:
// a node id plus its fused similarity score R(Mi).
type Seed struct {
	NodeID string
	Score  float64
}

// Step is one hop in an explored path: the edge traversed and the node
// reached.
type Step struct {
	Node           *graph.Node
	Edge           *graph.Edge
	TransferEnergy float64
}

// Path is a single complete branch from a seed outward through the graph.
type Path struct {
	Steps       []Step
	Depth       int
	FinalEnergy float64
}

// TerminationReason explains why an exploration stopped producing results.
type TerminationReason string

const (
	TerminationComplete    TerminationReason = "complete"
	TerminationSeedMissing TerminationReason = "seed_not_found"
)

// Result is the complete output of one multi-path exploration from a
// single seed.
type Result struct {
	SeedID           string
	SeedScore        float64
	SeedNode         *graph.Node
	Paths            []Path
	MaxDepthReached  int
	TerminatedReason TerminationReason
}

// frontierNode tracks one active branch during BFS expansion.
type frontierNode struct {
	nodeID     string
	activation float64
	path       []Step
}
