package graph

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// TransactionConfig defines a timeout and metadata for a transaction.
// Metadata is logged by Neo4j and visible in query.log, useful for
// debugging slow queries and categorizing operations.
type TransactionConfig struct {
	Timeout  time.Duration
	Metadata map[string]any
}

// DefaultTransactionConfigs returns recommended configs for the two
// read-only operations the core ever issues, plus a health check.
func DefaultTransactionConfigs() map[string]TransactionConfig {
	return map[string]TransactionConfig{
		"fetch_seed": {
			Timeout: 5 * time.Second,
			Metadata: map[string]any{
				"operation": "fetch_seed",
				"type":      "read",
			},
		},
		"expand_frontier": {
			Timeout: 10 * time.Second,
			Metadata: map[string]any{
				"operation": "expand_frontier",
				"type":      "read",
			},
		},
		"health_check": {
			Timeout: 5 * time.Second,
			Metadata: map[string]any{
				"operation": "health_check",
				"type":      "read",
			},
		},
	}
}

// AsNeo4jConfig converts to Neo4j transaction config functions for use
// with session.ExecuteRead.
func (tc TransactionConfig) AsNeo4jConfig() []func(*neo4j.TransactionConfig) {
	var configs []func(*neo4j.TransactionConfig)
	if tc.Timeout > 0 {
		configs = append(configs, neo4j.WithTxTimeout(tc.Timeout))
	}
	if len(tc.Metadata) > 0 {
		configs = append(configs, neo4j.WithTxMetadata(tc.Metadata))
	}
	return configs
}

// GetConfigForOperation retrieves the transaction config for an operation,
// falling back to a generic 60s read timeout for unknown operations.
func GetConfigForOperation(operation string) TransactionConfig {
	if config, ok := DefaultTransactionConfigs()[operation]; ok {
		return config
	}
	return TransactionConfig{
		Timeout: 60 * time.Second,
		Metadata: map[string]any{
			"operation": operation,
			"type":      "unknown",
		},
	}
}

// WithTimeout returns a copy of tc with a different timeout.
func (tc TransactionConfig) WithTimeout(timeout time.Duration) TransactionConfig {
	return TransactionConfig{Timeout: timeout, Metadata: tc.Metadata}
}
