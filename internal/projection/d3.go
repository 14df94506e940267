package projection

import (
	"math"

	"github.com/rohankatakam/memoria-retrieve/internal/graph"
	"github.com/rohankatakam/memoria-retrieve/internal/retrieval"
)

type edgeAgg struct {
	edge              *graph.Edge
	maxTransferEnergy float64
}

// ToD3 renders a retrieval result as a {nodes, edges} graph suitable for a
// force-directed layout. It is a pure function: r is never mutated.
func ToD3(r retrieval.Result) D3Graph {
	nodes := map[string]*graph.Node{}
	isSeed := map[string]bool{}
	activation := map[string]float64{}
	edges := map[string]*edgeAgg{}

	if r.SeedNode != nil {
		nodes[r.SeedID] = r.SeedNode
		isSeed[r.SeedID] = true
		activation[r.SeedID] = r.SeedScore
	}

	for _, p := range r.Paths {
		for _, step := range p.Steps {
			if step.Node != nil {
				nodes[step.Node.ID] = step.Node
				if cur, ok := activation[step.Node.ID]; !ok || step.TransferEnergy > cur {
					activation[step.Node.ID] = step.TransferEnergy
				}
			}
			if step.Edge != nil {
				key := edgeKey(step.Edge)
				agg, ok := edges[key]
				if !ok {
					edges[key] = &edgeAgg{edge: step.Edge, maxTransferEnergy: step.TransferEnergy}
				} else if step.TransferEnergy > agg.maxTransferEnergy {
					agg.maxTransferEnergy = step.TransferEnergy
				}
			}
		}
	}

	out := D3Graph{
		Nodes: make([]map[string]any, 0, len(nodes)),
		Edges: make([]map[string]any, 0, len(edges)),
	}
	for id, n := range nodes {
		out.Nodes = append(out.Nodes, nodeAttrs(n, isSeed[id], activation[id]))
	}
	for _, agg := range edges {
		out.Edges = append(out.Edges, edgeAttrs(agg.edge, agg.maxTransferEnergy))
	}
	return out
}

func edgeKey(e *graph.Edge) string {
	return e.SourceID + "\x00" + e.TargetID + "\x00" + e.Type
}

func nodeAttrs(n *graph.Node, isSeed bool, activation float64) map[string]any {
	attrs := map[string]any{
		"id":                   n.ID,
		"label":                n.Label(),
		"is_seed":              isSeed,
		"retrieval_activation": activation,
	}
	copyPassthrough(attrs, n.Properties, passthroughNodeFields)
	if text, ok := n.Properties["text"].(string); ok {
		attrs["text"] = cleanText(text)
	}
	return attrs
}

func edgeAttrs(e *graph.Edge, transferEnergy float64) map[string]any {
	attrs := map[string]any{
		"source":          e.SourceID,
		"target":          e.TargetID,
		"transfer_energy": roundTo(transferEnergy, 3),
	}
	if e.ID != "" {
		attrs["edge_id"] = e.ID
	}
	if e.Weight != nil {
		attrs["weight"] = roundTo(*e.Weight, 2)
	}
	if len(e.Tags) > 0 {
		attrs["tags"] = e.Tags
	}
	copyPassthrough(attrs, e.Properties, passthroughEdgeFields)
	if text, ok := e.Properties["text"].(string); ok {
		attrs["text"] = cleanText(text)
	}
	return attrs
}

func copyPassthrough(dst map[string]any, src map[string]any, fields []string) {
	for _, f := range fields {
		if v, ok := src[f]; ok {
			dst[f] = v
		}
	}
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
