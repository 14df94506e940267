package retrieval

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rohankatakam/memoria-retrieve/internal/metrics"
)

// Outcome pairs one seed's exploration result with any error that
// survived retries.
type Outcome struct {
	Result Result
	Err    error
}

// Explore launches one goroutine per seed and streams outcomes back on the
// returned channel in completion order — a fast seed's result is
// available immediately even while slower seeds are still expanding.
// Cancelling ctx stops in-flight expansions; goroutines still unwind and
// the channel still closes once every seed has returned.
func Explore(ctx context.Context, store Store, seeds []Seed, queryTags []string, cfg Config, logger *slog.Logger) <-chan Outcome {
	out := make(chan Outcome, len(seeds))
	if len(seeds) == 0 {
		close(out)
		return out
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "retrieval.explorer")

	var wg sync.WaitGroup
	wg.Add(len(seeds))
	for _, seed := range seeds {
		go func(seed Seed) {
			defer wg.Done()
			metrics.ExplorationsStarted.Inc()
			metrics.ActiveExplorations.Inc()
			defer metrics.ActiveExplorations.Dec()

			start := time.Now()
			result, err := exploreWithRetry(ctx, store, seed, queryTags, cfg, logger)
			metrics.ExplorationDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				metrics.ExplorationsFailed.Inc()
			} else {
				metrics.ExplorationsCompleted.WithLabelValues(string(result.TerminatedReason)).Inc()
			}

			select {
			case out <- Outcome{Result: result, Err: err}:
			case <-ctx.Done():
			}
		}(seed)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// exploreWithRetry runs exploreSingle with exponential backoff
// (base * 2^attempt) between attempts, matching the algorithm's retry
// policy for transient graph-store failures.
func exploreWithRetry(ctx context.Context, store Store, seed Seed, queryTags []string, cfg Config, logger *slog.Logger) (Result, error) {
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, err := exploreSingle(ctx, store, seed, queryTags, cfg)
		if err == nil {
			return result, nil
		}
		lastErr = err
		logger.Warn("exploration attempt failed",
			"seed_id", seed.NodeID,
			"attempt", attempt+1,
			"max_attempts", cfg.MaxRetries+1,
			"error", err)

		if attempt < cfg.MaxRetries {
			metrics.ExplorationRetries.Inc()
			wait := cfg.RetryBaseWait * time.Duration(uint64(1)<<uint(attempt))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return Result{}, ctx.Err()
			}
		}
	}
	return Result{}, ErrStoreUnavailable(seed.NodeID, lastErr)
}
