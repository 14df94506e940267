package vectorstore

import "sort"

// WeightedLinearFuse combines independently-ranked dense and sparse hit
// lists into one ranking via a weighted linear combination of scores,
// rather than rank-based fusion (RRF): fused = denseWeight*dense +
// sparseWeight*sparse, with a hit present in only one list contributing
// zero for the other. Linear weights keep the dense/lexical balance a
// per-collection tuning knob instead of a fixed rank formula.
func WeightedLinearFuse(dense, sparse []Hit, denseWeight, sparseWeight float64) []Hit {
	scores := make(map[string]float64, len(dense)+len(sparse))
	order := make([]string, 0, len(dense)+len(sparse))

	add := func(hits []Hit, weight float64) {
		for _, h := range hits {
			if _, seen := scores[h.NodeID]; !seen {
				order = append(order, h.NodeID)
			}
			scores[h.NodeID] += h.Score * weight
		}
	}
	add(dense, denseWeight)
	add(sparse, sparseWeight)

	fused := make([]Hit, 0, len(order))
	for _, id := range order {
		fused = append(fused, Hit{NodeID: id, Score: scores[id]})
	}
	sort.Slice(fused, func(i, j int) bool { return fused[i].Score > fused[j].Score })
	return fused
}
