package graph

// Node is a normalized, owned snapshot of a property-graph node, decoded at
// the adapter boundary from a driver record. The core never holds a live
// driver reference past the transaction that produced it.
type Node struct {
	ID         string
	Labels     []string
	Properties map[string]any
}

// Label returns the node's first label, or "Node" when it carries none.
func (n *Node) Label() string {
	if n == nil || len(n.Labels) == 0 {
		return "Node"
	}
	return n.Labels[0]
}

// Edge is a RELATES relationship, decoded with a fixed traversal direction
// (source -> target) even though expansion treats it as undirected.
type Edge struct {
	ID         string
	Type       string
	SourceID   string
	TargetID   string
	Weight     *float64
	Tags       []string
	Properties map[string]any
}

// WeightOrDefault returns the edge weight, or 0.01 when absent, matching
// the Cypher expansion query's coalesce(r.weight, 0.01).
func (e *Edge) WeightOrDefault() float64 {
	if e == nil || e.Weight == nil {
		return 0.01
	}
	return *e.Weight
}

// SeedFetchResult is the outcome of looking up a node by id.
type SeedFetchResult struct {
	Node   *Node
	Labels []string
	Found  bool
}

// FrontierInput is one entry of the frontier parameter sent to the
// expansion query: a node under expansion and its current activation.
type FrontierInput struct {
	NodeID     string
	Activation float64
}

// ExpansionCandidate is one row returned by ExpandFrontier, already
// decoded and scored.
type ExpansionCandidate struct {
	ParentID       string
	NeighborNode   *Node
	Edge           *Edge
	TransferEnergy float64
}
