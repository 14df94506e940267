package projection

// passthroughNodeFields and passthroughEdgeFields list the optional
// node/edge properties copied verbatim from the source graph data into the
// D3 and LLM-context attributes. The text property is not in either list;
// it is added separately after cleanText. Attributes are maps, so the
// list order does not fix the output order.
var passthroughNodeFields = []string{
	"conv_id", "status", "tags", "parameter_field", "analysis_types",
	"metrics", "doc_pointer", "source_type", "relevant_parts",
	"start_date", "end_date", "user_role", "user_id", "preference_type",
	"update_time", "ingestion_time", "created_time",
}

var passthroughEdgeFields = []string{"created_time"}

// D3Graph is the {nodes, edges} envelope consumed by a force-directed
// layout.
type D3Graph struct {
	Nodes []map[string]any `json:"nodes"`
	Edges []map[string]any `json:"edges"`
}

// LLMContext is the prompt-ready rendering of a retrieval result.
type LLMContext struct {
	Paths                 []string `json:"paths"`
	NodeAndEdgeAttributes D3Graph  `json:"node_and_edge_attributes"`
}

// DebugCypher reconstructs the paths a retrieval traversed as runnable
// Cypher, for manual inspection in a Neo4j browser.
type DebugCypher struct {
	PathsCombined   string   `json:"paths_combined"`
	IndividualPaths []string `json:"individual_paths"`
}
