package retrieval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rohankatakam/memoria-retrieve/internal/metrics"
	"github.com/rohankatakam/memoria-retrieve/internal/vectorstore"
)

// HybridSearch is the subset of vectorstore.Store this package depends on,
// kept narrow so seed retrieval can be tested against a fake.
type HybridSearch interface {
	HybridSearch(ctx context.Context, dense []float32, sparse vectorstore.SparseVector, limit int, denseWeight, sparseWeight float64) ([]vectorstore.Hit, error)
}

// SeedRetriever turns a user query into the seed set an exploration
// starts from: embed the query, run hybrid search, and convert hits into
// Seed values ordered by fused score.
type SeedRetriever struct {
	search       HybridSearch
	embedder     vectorstore.EmbeddingProvider
	vectorizer   vectorstore.SparseVectorizer
	denseWeight  float64
	sparseWeight float64
}

// NewSeedRetriever builds a SeedRetriever. denseWeight/sparseWeight tune
// the client-side weighted-linear fusion; 0.5/0.5 weighs both legs
// equally. Both weights must fall in [0, 1] and must not both be zero —
// an invalid ranker is a construction-time error, not a runtime one.
func NewSeedRetriever(search HybridSearch, embedder vectorstore.EmbeddingProvider, denseWeight, sparseWeight float64) (*SeedRetriever, error) {
	if err := validateRankerWeights(denseWeight, sparseWeight); err != nil {
		return nil, err
	}
	return &SeedRetriever{
		search:       search,
		embedder:     embedder,
		vectorizer:   vectorstore.NewSparseVectorizer(),
		denseWeight:  denseWeight,
		sparseWeight: sparseWeight,
	}, nil
}

// validateRankerWeights enforces the weighted-linear ranker's contract:
// both legs in [0, 1], not both zero (a ranker that can never score
// anything is a configuration error, not a runtime one).
func validateRankerWeights(denseWeight, sparseWeight float64) error {
	if denseWeight < 0 || denseWeight > 1 {
		return ErrInvalidConfig("dense weight must be in [0, 1]")
	}
	if sparseWeight < 0 || sparseWeight > 1 {
		return ErrInvalidConfig("sparse weight must be in [0, 1]")
	}
	if denseWeight == 0 && sparseWeight == 0 {
		return ErrInvalidConfig("dense weight and sparse weight must not both be zero")
	}
	return nil
}

// Seeds embeds query, runs hybrid search, and returns up to limit seeds
// ordered by fused score. A blank query or a non-positive limit returns an
// empty seed set without touching the embedder or the vector store.
func (r *SeedRetriever) Seeds(ctx context.Context, query string, limit int) ([]Seed, error) {
	if strings.TrimSpace(query) == "" || limit <= 0 {
		return nil, nil
	}

	defer func(start time.Time) {
		metrics.SeedRetrievalDuration.Observe(time.Since(start).Seconds())
	}(time.Now())

	dense, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	sparse := r.vectorizer.Vectorize(query)

	hits, err := r.search.HybridSearch(ctx, dense, sparse, limit, r.denseWeight, r.sparseWeight)
	if err != nil {
		return nil, fmt.Errorf("hybrid search: %w", err)
	}

	seeds := make([]Seed, 0, len(hits))
	for _, h := range hits {
		seeds = append(seeds, Seed{NodeID: h.NodeID, Score: h.Score})
	}
	return seeds, nil
}

// WithScoreFloor filters seeds below min, an opt-in per-call guard for
// collections where weak hybrid matches are worse than no seed at all.
// Off by default: the traversal's own min_activation threshold already
// prunes weak branches, so most callers never need this.
func WithScoreFloor(seeds []Seed, min float64) []Seed {
	filtered := make([]Seed, 0, len(seeds))
	for _, s := range seeds {
		if s.Score >= min {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
