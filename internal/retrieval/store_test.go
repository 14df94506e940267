package retrieval

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/rohankatakam/memoria-retrieve/internal/graph"
)

// fakeStore is an in-memory Store backed by an adjacency list, used to
// unit test traversal and concurrency without a live Neo4j instance.
type fakeStore struct {
	mu        sync.Mutex
	nodes     map[string]*graph.Node
	edges     map[string][]fakeEdge // nodeID -> outgoing/undirected edges
	failUntil map[string]int        // seedID -> number of calls to fail before succeeding
	calls     map[string]int
}

type fakeEdge struct {
	neighborID string
	edge       *graph.Edge
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nodes:     make(map[string]*graph.Node),
		edges:     make(map[string][]fakeEdge),
		failUntil: make(map[string]int),
		calls:     make(map[string]int),
	}
}

func (s *fakeStore) addNode(id string, labels ...string) {
	s.nodes[id] = &graph.Node{ID: id, Labels: labels, Properties: map[string]any{"id": id}}
}

func (s *fakeStore) addEdge(a, b string, weight float64, tags []string) {
	e := &graph.Edge{ID: a + "-" + b, Type: "RELATES", SourceID: a, TargetID: b, Weight: &weight, Tags: tags}
	s.edges[a] = append(s.edges[a], fakeEdge{neighborID: b, edge: e})
	s.edges[b] = append(s.edges[b], fakeEdge{neighborID: a, edge: e})
}

func (s *fakeStore) FetchSeed(_ context.Context, nodeID string) (graph.SeedFetchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[nodeID]++
	if remaining, ok := s.failUntil[nodeID]; ok && remaining > 0 {
		s.failUntil[nodeID] = remaining - 1
		return graph.SeedFetchResult{}, errors.New("simulated transient failure")
	}
	node, ok := s.nodes[nodeID]
	if !ok {
		return graph.SeedFetchResult{Found: false}, nil
	}
	return graph.SeedFetchResult{Node: node, Labels: node.Labels, Found: true}, nil
}

func (s *fakeStore) ExpandFrontier(
	_ context.Context,
	frontier []graph.FrontierInput,
	visitedIDs []string,
	queryTags []string,
	tagSimFloor float64,
	minThreshold float64,
) ([]graph.ExpansionCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	visited := make(map[string]struct{}, len(visitedIDs))
	for _, id := range visitedIDs {
		visited[id] = struct{}{}
	}

	degree := func(nodeID string) int { return len(s.edges[nodeID]) }

	var candidates []graph.ExpansionCandidate
	for _, f := range frontier {
		d := degree(f.NodeID)
		for _, out := range s.edges[f.NodeID] {
			if _, skip := visited[out.neighborID]; skip {
				continue
			}
			tagSim := TagSimilarity(out.edge.Tags, queryTags, tagSimFloor)
			te := TransferEnergy(f.Activation, out.edge.WeightOrDefault(), d, tagSim)
			if te <= minThreshold {
				continue
			}
			neighbor := s.nodes[out.neighborID]
			candidates = append(candidates, graph.ExpansionCandidate{
				ParentID:       f.NodeID,
				NeighborNode:   neighbor,
				Edge:           out.edge,
				TransferEnergy: te,
			})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].ParentID != candidates[j].ParentID {
			return candidates[i].ParentID < candidates[j].ParentID
		}
		return candidates[i].TransferEnergy > candidates[j].TransferEnergy
	})
	return candidates, nil
}
