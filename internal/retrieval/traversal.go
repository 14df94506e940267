package retrieval

import (
	"context"

	"github.com/rohankatakam/memoria-retrieve/internal/graph"
)

// Store is the read-only graph access the traversal needs. graph.Client
// satisfies it; tests substitute a fake.
type Store interface {
	FetchSeed(ctx context.Context, nodeID string) (graph.SeedFetchResult, error)
	ExpandFrontier(
		ctx context.Context,
		frontier []graph.FrontierInput,
		visitedIDs []string,
		queryTags []string,
		tagSimFloor float64,
		minThreshold float64,
	) ([]graph.ExpansionCandidate, error)
}

// exploreSingle runs one full multi-path BFS exploration from seed. It
// opens no session itself — each ExpandFrontier call is its own read
// transaction against store, matching one Cypher round-trip per depth.
func exploreSingle(ctx context.Context, store Store, seed Seed, queryTags []string, cfg Config) (Result, error) {
	seedResult, err := store.FetchSeed(ctx, seed.NodeID)
	if err != nil {
		return Result{}, err
	}
	if !seedResult.Found {
		return Result{
			SeedID:           seed.NodeID,
			SeedScore:        seed.Score,
			TerminatedReason: TerminationSeedMissing,
		}, nil
	}

	frontier := []frontierNode{{nodeID: seed.NodeID, activation: seed.Score, path: nil}}
	visited := map[string]struct{}{seed.NodeID: {}}
	var completedPaths []Path

	for depth := 0; depth < cfg.MaxDepth && len(frontier) > 0; depth++ {
		frontierInputs := make([]graph.FrontierInput, 0, len(frontier))
		for _, f := range frontier {
			frontierInputs = append(frontierInputs, graph.FrontierInput{NodeID: f.nodeID, Activation: f.activation})
		}
		visitedIDs := make([]string, 0, len(visited))
		for id := range visited {
			visitedIDs = append(visitedIDs, id)
		}

		candidates, err := store.ExpandFrontier(ctx, frontierInputs, visitedIDs, queryTags, cfg.TagSimFloor, cfg.MinActivation)
		if err != nil {
			return Result{}, err
		}

		candidatesByParent := make(map[string][]graph.ExpansionCandidate, len(frontier))
		for _, c := range candidates {
			candidatesByParent[c.ParentID] = append(candidatesByParent[c.ParentID], c)
		}

		var nextFrontier []frontierNode
		newlyVisited := make(map[string]struct{})

		for _, fNode := range frontier {
			branchCount := 0
			for _, cand := range candidatesByParent[fNode.nodeID] {
				if branchCount >= cfg.MaxBranches {
					break
				}
				neighborID := cand.NeighborNode.ID
				if _, dup := newlyVisited[neighborID]; dup {
					continue
				}
				branchCount++
				newlyVisited[neighborID] = struct{}{}

				step := Step{
					Node:           cand.NeighborNode,
					Edge:           cand.Edge,
					TransferEnergy: cand.TransferEnergy,
				}
				extendedPath := append(append([]Step{}, fNode.path...), step)
				nextFrontier = append(nextFrontier, frontierNode{
					nodeID:     neighborID,
					activation: cand.TransferEnergy,
					path:       extendedPath,
				})
			}

			if branchCount == 0 && len(fNode.path) > 0 {
				completedPaths = append(completedPaths, pathFromSteps(fNode.path))
			}
		}

		for id := range newlyVisited {
			visited[id] = struct{}{}
		}
		frontier = nextFrontier
	}

	// Frontier nodes still active at max_depth complete by depth cap.
	for _, fNode := range frontier {
		if len(fNode.path) > 0 {
			completedPaths = append(completedPaths, pathFromSteps(fNode.path))
		}
	}

	maxDepth := 0
	for _, p := range completedPaths {
		if p.Depth > maxDepth {
			maxDepth = p.Depth
		}
	}

	return Result{
		SeedID:           seed.NodeID,
		SeedScore:        seed.Score,
		SeedNode:         seedResult.Node,
		Paths:            completedPaths,
		MaxDepthReached:  maxDepth,
		TerminatedReason: TerminationComplete,
	}, nil
}

func pathFromSteps(steps []Step) Path {
	return Path{
		Steps:       steps,
		Depth:       len(steps),
		FinalEnergy: steps[len(steps)-1].TransferEnergy,
	}
}
