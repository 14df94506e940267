package retrieval

import "github.com/rohankatakam/memoria-retrieve/internal/rerrors"

// ErrEmptySeeds indicates seed retrieval produced no seeds to explore.
// Explore itself does not return it: an empty seed list just yields a
// closed channel.
func ErrEmptySeeds() *rerrors.Error {
	return rerrors.ValidationError("no seeds provided for exploration")
}

// ErrInvalidConfig wraps a configuration validation failure.
func ErrInvalidConfig(message string) *rerrors.Error {
	return rerrors.ConfigError(message)
}

// ErrStoreUnavailable wraps a graph store failure surfaced after retries
// are exhausted for one seed's exploration.
func ErrStoreUnavailable(seedID string, cause error) *rerrors.Error {
	return rerrors.DatabaseErrorf(cause, "graph store unavailable while exploring seed %s", seedID).
		WithContext("seed_id", seedID)
}
