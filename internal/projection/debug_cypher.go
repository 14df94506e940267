package projection

import (
	"fmt"
	"strings"

	"github.com/rohankatakam/memoria-retrieve/internal/retrieval"
)

// ToDebugCypher reconstructs the paths a retrieval traversed as runnable
// Cypher: one MATCH per path plus a UNION-combined query, so the whole
// traversal can be replayed and inspected directly against Neo4j without
// risking a Cartesian-product MATCH across disjoint path patterns.
func ToDebugCypher(r retrieval.Result) DebugCypher {
	individual := make([]string, 0, len(r.Paths))
	for i, p := range r.Paths {
		pattern := pathPattern(r.SeedID, p, i)
		individual = append(individual, fmt.Sprintf("MATCH p%d = %s RETURN p%d", i, pattern, i))
	}

	return DebugCypher{
		PathsCombined:   strings.Join(individual, "\nUNION\n"),
		IndividualPaths: individual,
	}
}

// pathPattern renders the undirected node-id chain for path p, starting
// from seedID, e.g. (n0_0 {id: 'SEED'})-[:RELATES]-(n0_1 {id: 'X'}).
func pathPattern(seedID string, p retrieval.Path, pathIndex int) string {
	ids := make([]string, 0, len(p.Steps)+1)
	ids = append(ids, seedID)
	for _, step := range p.Steps {
		if step.Node != nil {
			ids = append(ids, step.Node.ID)
		}
	}

	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteString("-[:RELATES]-")
		}
		fmt.Fprintf(&sb, "(n%d_%d {id: %s})", pathIndex, i, cypherStringLiteral(id))
	}
	return sb.String()
}

// cypherStringLiteral single-quotes a literal, escaping embedded
// backslashes and single quotes.
func cypherStringLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
