package retrieval

import "time"

// Default tuning constants for the activation-energy traversal, mirroring
// the graph's own defaults so a retriever constructed with no options
// matches what the Cypher layer assumes.
const (
	DefaultMaxDepth      = 5
	DefaultMinActivation = 0.005
	DefaultTagSimFloor   = 0.15
	DefaultMaxBranches   = 3
	DefaultMaxRetries    = 2
	DefaultRetryBaseWait = 50 * time.Millisecond
)

// Config tunes the traversal behavior of Explore.
type Config struct {
	MaxDepth      int
	MinActivation float64
	TagSimFloor   float64
	MaxBranches   int
	MaxRetries    int
	RetryBaseWait time.Duration
}

// Option configures a Config at construction time.
type Option func(*Config)

// DefaultConfig returns the activation-energy defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:      DefaultMaxDepth,
		MinActivation: DefaultMinActivation,
		TagSimFloor:   DefaultTagSimFloor,
		MaxBranches:   DefaultMaxBranches,
		MaxRetries:    DefaultMaxRetries,
		RetryBaseWait: DefaultRetryBaseWait,
	}
}

// WithMaxDepth overrides the maximum traversal hops per path.
func WithMaxDepth(depth int) Option {
	return func(c *Config) { c.MaxDepth = depth }
}

// WithMinActivation overrides the minimum transfer energy to continue a
// branch.
func WithMinActivation(min float64) Option {
	return func(c *Config) { c.MinActivation = min }
}

// WithTagSimFloor overrides the floored-Jaccard baseline.
func WithTagSimFloor(floor float64) Option {
	return func(c *Config) { c.TagSimFloor = floor }
}

// WithMaxBranches overrides the maximum neighbors expanded per node per
// depth.
func WithMaxBranches(branches int) Option {
	return func(c *Config) { c.MaxBranches = branches }
}

// WithMaxRetries overrides the per-seed exploration retry limit.
func WithMaxRetries(retries int) Option {
	return func(c *Config) { c.MaxRetries = retries }
}

// NewConfig builds a Config from DefaultConfig with opts applied, then
// validates it.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the traversal cannot run with.
func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return ErrInvalidConfig("max_depth must be positive")
	}
	if c.MaxBranches <= 0 {
		return ErrInvalidConfig("max_branches must be positive")
	}
	if c.TagSimFloor < 0 || c.TagSimFloor > 1 {
		return ErrInvalidConfig("tag_sim_floor must be in [0, 1]")
	}
	if c.MinActivation < 0 {
		return ErrInvalidConfig("min_activation must be non-negative")
	}
	if c.MaxRetries < 0 {
		return ErrInvalidConfig("max_retries must be non-negative")
	}
	return nil
}
