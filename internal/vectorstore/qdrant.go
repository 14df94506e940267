package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
)

// denseVectorName and sparseVectorName are the named vectors configured on
// the collection — a single Qdrant collection holds both so a single
// upsert writes one point with both representations.
const (
	denseVectorName  = "dense"
	sparseVectorName = "sparse"
)

// Config describes how to reach and shape the backing Qdrant collection.
type Config struct {
	DSN            string // e.g. "http://localhost:6334" or "https://host?api_key=..."
	Collection     string
	DenseDimension int
	Metric         string // cosine|l2|ip (default cosine)
}

// Store is a hybrid (dense + sparse) vector search adapter over Qdrant.
type Store struct {
	client              *qdrant.Client
	collection          string
	dimension           int
	scoreFloor          float64
	candidateMultiplier int
	filter              *qdrant.Filter
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithScoreFloor discards fused hits scoring below floor. Off by default
// (floor 0 keeps every hit), matching the asymmetry between the original's
// two retrievers: one enforces a minimum score, the other does not.
func WithScoreFloor(floor float64) Option {
	return func(s *Store) { s.scoreFloor = floor }
}

// WithCandidateMultiplier overrides how much each leg over-fetches before
// fusion (default 4, so fusion has enough overlap between the two legs to
// rank well).
func WithCandidateMultiplier(multiplier int) Option {
	return func(s *Store) {
		if multiplier > 0 {
			s.candidateMultiplier = multiplier
		}
	}
}

// WithFilter restricts both search legs to points matching a payload
// filter (e.g. "tags"), mirroring the original's optional boolean `expr`
// filter.
func WithFilter(filter *qdrant.Filter) Option {
	return func(s *Store) { s.filter = filter }
}

// NewStore connects to Qdrant and ensures the collection exists with both
// a dense and a sparse named vector configured.
func NewStore(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	if cfg.Collection == "" {
		return nil, fmt.Errorf("vectorstore: collection name is required")
	}
	if cfg.DenseDimension <= 0 {
		return nil, fmt.Errorf("vectorstore: dense dimension must be positive")
	}

	parsed, err := url.Parse(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("vectorstore: parse dsn: %w", err)
	}
	host := parsed.Hostname()
	if host == "" {
		host = "localhost"
	}
	port := parsed.Port()
	if port == "" {
		port = "6334"
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("vectorstore: invalid port in dsn: %w", err)
	}

	qcfg := &qdrant.Config{Host: host, Port: portNum}
	if parsed.Scheme == "https" {
		qcfg.UseTLS = true
	}
	if apiKey := parsed.Query().Get("api_key"); apiKey != "" {
		qcfg.APIKey = apiKey
	}

	client, err := qdrant.NewClient(qcfg)
	if err != nil {
		return nil, fmt.Errorf("vectorstore: create qdrant client: %w", err)
	}

	store := &Store{client: client, collection: cfg.Collection, dimension: cfg.DenseDimension, candidateMultiplier: 4}
	for _, opt := range opts {
		opt(store)
	}
	if err := store.ensureCollection(ctx, cfg); err != nil {
		client.Close()
		return nil, fmt.Errorf("vectorstore: ensure collection: %w", err)
	}
	return store, nil
}

func (s *Store) ensureCollection(ctx context.Context, cfg Config) error {
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("check collection exists: %w", err)
	}
	if exists {
		return nil
	}

	distance := qdrant.Distance_Cosine
	switch cfg.Metric {
	case "l2", "euclidean":
		distance = qdrant.Distance_Euclid
	case "ip", "dot":
		distance = qdrant.Distance_Dot
	}

	return s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfigMap(map[string]*qdrant.VectorParams{
			denseVectorName: {
				Size:     uint64(cfg.DenseDimension),
				Distance: distance,
			},
		}),
		SparseVectorsConfig: qdrant.NewSparseVectorsConfig(map[string]*qdrant.SparseVectorParams{
			sparseVectorName: {},
		}),
	})
}

// Upsert writes one point carrying both the dense and sparse
// representation of nodeID's text, along with the tags that fuel the
// downstream tag_sim computation during traversal.
func (s *Store) Upsert(ctx context.Context, nodeID string, dense []float32, sparse SparseVector, tags []string) error {
	payload := map[string]any{"node_id": nodeID}
	if len(tags) > 0 {
		tagAny := make([]any, len(tags))
		for i, t := range tags {
			tagAny[i] = t
		}
		payload["tags"] = tagAny
	}

	point := &qdrant.PointStruct{
		Id: qdrant.NewIDNum(idHash(nodeID)),
		Vectors: qdrant.NewVectorsMap(map[string]*qdrant.Vector{
			denseVectorName:  qdrant.NewVectorDense(dense),
			sparseVectorName: qdrant.NewVectorSparse(sparse.Indices, sparse.Values),
		}),
		Payload: qdrant.NewValueMap(payload),
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         []*qdrant.PointStruct{point},
	})
	return err
}

// HybridSearch issues two independent Query calls — one against the dense
// vector, one against the sparse vector — and fuses them client-side with
// a weighted-linear combination. This deliberately avoids Qdrant's native
// RRF/DBSF fusion modes: the algorithm calls for arbitrary, tunable
// per-collection weights, which only a client-side linear combination can
// express. The candidate-oversample factor and payload filter are fixed at
// construction via WithCandidateMultiplier/WithFilter, so the method
// signature matches retrieval.HybridSearch exactly.
func (s *Store) HybridSearch(
	ctx context.Context,
	dense []float32,
	sparse SparseVector,
	limit int,
	denseWeight, sparseWeight float64,
) ([]Hit, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := uint64(limit * s.candidateMultiplier)

	denseHits, err := s.queryNamed(ctx, denseVectorName, qdrant.NewQueryDense(dense), fetchLimit, s.filter)
	if err != nil {
		return nil, fmt.Errorf("dense query: %w", err)
	}
	sparseHits, err := s.queryNamed(ctx, sparseVectorName, qdrant.NewQuerySparse(sparse.Indices, sparse.Values), fetchLimit, s.filter)
	if err != nil {
		return nil, fmt.Errorf("sparse query: %w", err)
	}

	fused := WeightedLinearFuse(denseHits, sparseHits, denseWeight, sparseWeight)
	if s.scoreFloor > 0 {
		kept := fused[:0]
		for _, hit := range fused {
			if hit.Score >= s.scoreFloor {
				kept = append(kept, hit)
			}
		}
		fused = kept
	}
	if len(fused) > limit {
		fused = fused[:limit]
	}
	return fused, nil
}

func (s *Store) queryNamed(ctx context.Context, using string, query *qdrant.Query, limit uint64, filter *qdrant.Filter) ([]Hit, error) {
	result, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Using:          qdrant.PtrOf(using),
		Query:          query,
		Limit:          &limit,
		Filter:         filter,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(result))
	for _, scored := range result {
		nodeID := ""
		if scored.Payload != nil {
			if v, ok := scored.Payload["node_id"]; ok {
				nodeID = v.GetStringValue()
			}
		}
		if nodeID == "" {
			continue
		}
		hits = append(hits, Hit{NodeID: nodeID, Score: float64(scored.Score)})
	}
	return hits, nil
}

// Close releases the underlying gRPC connection.
func (s *Store) Close() error { return s.client.Close() }

// idHash derives a stable numeric point id from a node id string, since
// Qdrant point ids must be UUIDs or unsigned integers and the graph's ids
// are arbitrary strings kept in the payload for lookup.
func idHash(nodeID string) uint64 {
	var h uint64 = 14695981039346656037 // FNV-1a offset basis
	for i := 0; i < len(nodeID); i++ {
		h ^= uint64(nodeID[i])
		h *= 1099511628211 // FNV-1a prime
	}
	return h
}
