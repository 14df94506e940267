package retrieval

import "math"

// TagSimilarity computes the floored-Jaccard similarity between an edge's
// tags and the query's tags, mirroring the expansion query's CASE
// expression exactly:
//
//   - no query tags at all              -> 1.0 (tags don't discriminate)
//   - query tags present, edge untagged -> floor
//   - otherwise                         -> floor + (1-floor) * jaccard-like term
//
// edgeTags and queryTags need not be deduplicated; intersection counting
// matches the Cypher side's list membership semantics (duplicates in
// edgeTags each count once per match, same as `size([t IN eTags WHERE t IN
// $query_tags])`).
func TagSimilarity(edgeTags, queryTags []string, floor float64) float64 {
	if len(queryTags) == 0 {
		return 1.0
	}
	if len(edgeTags) == 0 {
		return floor
	}

	querySet := make(map[string]struct{}, len(queryTags))
	for _, t := range queryTags {
		querySet[t] = struct{}{}
	}

	interCount := 0
	for _, t := range edgeTags {
		if _, ok := querySet[t]; ok {
			interCount++
		}
	}

	denom := float64(len(edgeTags) + len(queryTags) - interCount)
	if denom <= 0 {
		return floor
	}
	return floor + (1.0-floor)*float64(interCount)/denom
}

// TransferEnergy computes T = (activation * weight / sqrt(degree)) *
// tag_sim for one hop, matching the expansion query's scoring formula.
// degree must be the neighbor count of the node being expanded, not the
// neighbor reached.
func TransferEnergy(activation, weight float64, degree int, tagSim float64) float64 {
	if degree <= 0 {
		return 0
	}
	return (activation * weight / math.Sqrt(float64(degree))) * tagSim
}
