package graph

import (
	"context"
	"time"
)

// slowQueryRatio is the fraction of a transaction's configured timeout at
// which a still-successful query starts getting logged as slow.
const slowQueryRatio = 0.8

// warnIfSlow logs queries that came close to (or blew past) their
// transaction timeout. Concurrent explorations each hold their own
// session, so a cluster of slow expand_frontier calls usually means the
// pool ceiling is too low for the seed count, not that one query is bad.
func (c *Client) warnIfSlow(operation string, cfg TransactionConfig, duration time.Duration) {
	if cfg.Timeout <= 0 {
		return
	}
	if duration >= cfg.Timeout {
		c.logger.Error("query exceeded transaction timeout",
			"operation", operation,
			"duration_seconds", duration.Seconds(),
			"timeout_seconds", cfg.Timeout.Seconds())
		return
	}
	if duration >= time.Duration(float64(cfg.Timeout)*slowQueryRatio) {
		c.logger.Warn("query approaching transaction timeout",
			"operation", operation,
			"duration_seconds", duration.Seconds(),
			"timeout_seconds", cfg.Timeout.Seconds())
	}
}

// WatchPoolHealth re-verifies connectivity on a fixed interval until ctx is
// cancelled. Hosts that keep a Client alive across many retrieval requests
// run this in its own goroutine so a dead Neo4j surfaces in the logs before
// the next exploration fails.
func (c *Client) WatchPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.HealthCheck(ctx); err != nil {
				c.logger.Warn("pool health check failed", "error", err)
			}
		}
	}
}

// RecommendedPoolSize sizes the connection pool for a given number of
// concurrent explorations. Each seed's task checks out one session at a
// time, plus headroom for retries overlapping fresh arrivals.
func RecommendedPoolSize(concurrentExplorations int) int {
	recommended := concurrentExplorations * 3 / 2
	if recommended < 10 {
		return 10
	}
	if recommended > 100 {
		return 100
	}
	return recommended
}
