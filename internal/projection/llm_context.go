package projection

import (
	"fmt"
	"strings"

	"github.com/rohankatakam/memoria-retrieve/internal/retrieval"
)

// ToLLMContext renders a retrieval result as prompt-ready text: one line
// per path plus the same flattened node/edge attributes as ToD3, minus
// D3-specific layout fields.
func ToLLMContext(r retrieval.Result) LLMContext {
	paths := make([]string, 0, len(r.Paths))
	for i, p := range r.Paths {
		paths = append(paths, renderPath(r, i+1, p))
	}

	d3 := ToD3(r)
	nodes := make([]map[string]any, len(d3.Nodes))
	for i, n := range d3.Nodes {
		stripped := make(map[string]any, len(n))
		for k, v := range n {
			if k == "is_seed" {
				continue
			}
			stripped[k] = v
		}
		nodes[i] = stripped
	}
	edges := make([]map[string]any, 0, len(d3.Edges))
	for _, e := range d3.Edges {
		if _, ok := e["edge_id"]; !ok {
			// An edge with no id is still rendered inline in the path
			// string (via edgeMeta), but it has no stable identity to
			// anchor an attributes-section entry on.
			continue
		}
		stripped := make(map[string]any, len(e))
		for k, v := range e {
			switch k {
			case "source":
				stripped["source_node_id"] = v
			case "target":
				stripped["target_node_id"] = v
			default:
				stripped[k] = v
			}
		}
		edges = append(edges, stripped)
	}

	return LLMContext{
		Paths: paths,
		NodeAndEdgeAttributes: D3Graph{
			Nodes: nodes,
			Edges: edges,
		},
	}
}

func renderPath(r retrieval.Result, index int, p retrieval.Path) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Path %d: ", index)

	seedText := ""
	if r.SeedNode != nil {
		if t, ok := r.SeedNode.Properties["text"].(string); ok {
			seedText = firstWords(cleanText(t), 12)
		}
	}
	fmt.Fprintf(&sb, `[SEED] (%s %s: "%s")`, seedLabel(r), r.SeedID, seedText)

	for _, step := range p.Steps {
		sb.WriteString(" -[")
		sb.WriteString(edgeMeta(step))
		sb.WriteString("]- ")

		label := "Node"
		text := ""
		if step.Node != nil {
			label = step.Node.Label()
			if t, ok := step.Node.Properties["text"].(string); ok {
				text = firstWords(cleanText(t), 12)
			}
		}
		nodeID := ""
		if step.Node != nil {
			nodeID = step.Node.ID
		}
		fmt.Fprintf(&sb, `(%s %s: "%s")`, label, nodeID, text)
	}

	return sb.String()
}

func seedLabel(r retrieval.Result) string {
	if r.SeedNode != nil {
		return r.SeedNode.Label()
	}
	return "Node"
}

func edgeMeta(step retrieval.Step) string {
	var parts []string
	if step.Edge != nil {
		if step.Edge.ID != "" {
			parts = append(parts, step.Edge.ID)
		}
		if text, ok := step.Edge.Properties["text"].(string); ok && text != "" {
			parts = append(parts, fmt.Sprintf("%q", cleanText(text)))
		}
		parts = append(parts, fmt.Sprintf("weight=%.3f", step.Edge.WeightOrDefault()))
	}
	parts = append(parts, fmt.Sprintf("activation_score=%.3f", step.TransferEnergy))
	return strings.Join(parts, " ")
}
