package graph

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Client wraps the Neo4j driver with connection pool configuration and a
// fixed database name. It is safe for concurrent use — the underlying
// driver owns its own connection pool and every exploration checks out
// its own session.
type Client struct {
	driver   neo4j.DriverWithContext
	logger   *slog.Logger
	database string
	poolSize int
}

// Option configures a Client at construction time.
type Option func(*clientOptions)

type clientOptions struct {
	database     string
	maxPoolSize  int
	connTimeout  time.Duration
	maxConnLife  time.Duration
	liveCheckTTL time.Duration
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		database:     "memorygraph",
		maxPoolSize:  50,
		connTimeout:  5 * time.Second,
		maxConnLife:  3600 * time.Second,
		liveCheckTTL: 5 * time.Second,
	}
}

// WithDatabase overrides the default database name ("memorygraph").
func WithDatabase(name string) Option {
	return func(o *clientOptions) {
		if name != "" {
			o.database = name
		}
	}
}

// WithMaxPoolSize overrides the driver's connection pool size.
func WithMaxPoolSize(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.maxPoolSize = n
		}
	}
}

// NewClient creates a Neo4j client, verifying connectivity before returning
// (fail fast on startup, same convention as the rest of this ecosystem).
func NewClient(ctx context.Context, uri, user, password string, opts ...Option) (*Client, error) {
	if uri == "" || user == "" || password == "" {
		return nil, fmt.Errorf("neo4j credentials missing: uri=%s, user=%s", uri, user)
	}

	cfg := defaultClientOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	driver, err := neo4j.NewDriverWithContext(uri,
		neo4j.BasicAuth(user, password, ""),
		func(c *neo4j.Config) {
			c.MaxConnectionPoolSize = cfg.maxPoolSize
			c.ConnectionAcquisitionTimeout = 60 * time.Second
			c.MaxConnectionLifetime = cfg.maxConnLife
			c.ConnectionLivenessCheckTimeout = cfg.liveCheckTTL
			c.SocketConnectTimeout = cfg.connTimeout
			c.SocketKeepalive = true
		})
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("failed to connect to neo4j at %s: %w", uri, err)
	}

	logger := slog.Default().With("component", "graph")
	logger.Info("neo4j client connected",
		"uri", uri,
		"database", cfg.database,
		"max_pool_size", cfg.maxPoolSize)

	return &Client{
		driver:   driver,
		logger:   logger,
		database: cfg.database,
		poolSize: cfg.maxPoolSize,
	}, nil
}

// Close closes the underlying driver.
func (c *Client) Close(ctx context.Context) error {
	if err := c.driver.Close(ctx); err != nil {
		return fmt.Errorf("failed to close neo4j driver: %w", err)
	}
	c.logger.Info("neo4j client closed")
	return nil
}

// HealthCheck verifies connectivity to the configured database.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("neo4j health check failed: %w", err)
	}
	return nil
}

// Database returns the configured database name.
func (c *Client) Database() string { return c.database }

// PoolStats reports the configured pool ceiling. The Go driver does not
// expose live in-use/idle counts; production monitoring should scrape
// Neo4j's own metrics endpoint instead.
type PoolStats struct {
	MaxPoolSize int
}

// Stats returns the client's connection pool configuration.
func (c *Client) Stats() PoolStats {
	return PoolStats{MaxPoolSize: c.poolSize}
}

// ExecuteRead runs fn inside a read-only managed transaction against the
// client's configured database, using the session-per-call convention so
// concurrent explorations never share a transaction. cfg supplies the
// per-operation timeout and metadata (see GetConfigForOperation).
func (c *Client) ExecuteRead(ctx context.Context, cfg TransactionConfig, fn neo4j.ManagedTransactionWork) (any, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	operation := "read"
	if op, ok := cfg.Metadata["operation"].(string); ok {
		operation = op
	}
	start := time.Now()
	result, err := session.ExecuteRead(ctx, fn, cfg.AsNeo4jConfig()...)
	c.warnIfSlow(operation, cfg, time.Since(start))
	return result, err
}
