package vectorstore

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go/v3"
	"golang.org/x/time/rate"
)

const (
	// EmbeddingDimension is the dense vector size produced by
	// text-embedding-3-small, and must match Config.DenseDimension when
	// the collection is created.
	EmbeddingDimension = 1536

	embeddingModel = "text-embedding-3-small"

	// defaultEmbeddingRateLimit caps outbound embedding requests per
	// second across every concurrent seed retrieval, matching OpenAI's
	// per-key tier-1 rate ceiling closely enough to avoid 429 storms when
	// many seeds embed at once.
	defaultEmbeddingRateLimit = 50
)

// EmbeddingProvider turns text into the dense vector used for semantic
// (as opposed to lexical/BM25) similarity search.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// OpenAIEmbedder wraps the OpenAI embeddings endpoint with client-side rate
// limiting, since every concurrent seed retrieval embeds through one key.
type OpenAIEmbedder struct {
	client      openai.Client
	model       string
	rateLimiter *rate.Limiter
}

// NewOpenAIEmbedder creates an embedder. apiKey is exported as
// OPENAI_API_KEY and the SDK client picks it up from the environment.
// rateLimit is requests per second; 0 uses defaultEmbeddingRateLimit.
func NewOpenAIEmbedder(apiKey string, rateLimit ...int) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("vectorstore: OpenAI API key is required")
	}
	os.Setenv("OPENAI_API_KEY", apiKey)

	limit := defaultEmbeddingRateLimit
	if len(rateLimit) > 0 && rateLimit[0] > 0 {
		limit = rateLimit[0]
	}

	return &OpenAIEmbedder{
		client:      openai.NewClient(),
		model:       embeddingModel,
		rateLimiter: rate.NewLimiter(rate.Limit(limit), 1),
	}, nil
}

// Embed returns the text-embedding-3-small vector for text, blocking until
// the rate limiter admits the request.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := e.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("embeddings request: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embeddings response contained no data")
	}

	values := resp.Data[0].Embedding
	vec := make([]float32, len(values))
	for i, v := range values {
		vec[i] = float32(v)
	}
	return vec, nil
}
