package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the retrieval service.
type Config struct {
	Graph     GraphConfig     `yaml:"graph"`
	Vector    VectorConfig    `yaml:"vector"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
}

type GraphConfig struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	PoolSize int    `yaml:"pool_size"`
}

type VectorConfig struct {
	DSN            string `yaml:"dsn"`
	Collection     string `yaml:"collection"`
	DenseDimension int    `yaml:"dense_dimension"`
	Metric         string `yaml:"metric"`
}

type OpenAIConfig struct {
	APIKey         string `yaml:"api_key"`
	EmbeddingModel string `yaml:"embedding_model"`
}

type RetrievalConfig struct {
	MaxDepth      int     `yaml:"max_depth"`
	MaxBranches   int     `yaml:"max_branches"`
	MinActivation float64 `yaml:"min_activation"`
	TagSimFloor   float64 `yaml:"tag_sim_floor"`
	MaxRetries    int     `yaml:"max_retries"`
	DenseWeight   float64 `yaml:"dense_weight"`
	SparseWeight  float64 `yaml:"sparse_weight"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Graph: GraphConfig{
			Database: "memorygraph",
			PoolSize: 50,
		},
		Vector: VectorConfig{
			Collection:     "memoria_nodes",
			DenseDimension: 1536,
			Metric:         "cosine",
		},
		OpenAI: OpenAIConfig{
			EmbeddingModel: "text-embedding-3-small",
		},
		Retrieval: RetrievalConfig{
			MaxDepth:      5,
			MaxBranches:   3,
			MinActivation: 0.005,
			TagSimFloor:   0.15,
			MaxRetries:    2,
			DenseWeight:   0.5,
			SparseWeight:  0.5,
		},
	}
}

// Load loads configuration from defaults, the config file, and environment
// variables (prefix MEMORIA_, then the NEO4J_/QDRANT_/OPENAI_/RETRIEVAL_
// overrides), in increasing order of precedence. .env files are loaded into
// the environment first and only fill variables that are not already set.
func Load(path string) (*Config, error) {
	// Load .env files first (in order of precedence)
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	// Set defaults
	cfg := Default()
	v.SetDefault("graph", cfg.Graph)
	v.SetDefault("vector", cfg.Vector)
	v.SetDefault("openai", cfg.OpenAI)
	v.SetDefault("retrieval", cfg.Retrieval)

	// Load from environment variables
	v.SetEnvPrefix("MEMORIA")
	v.AutomaticEnv()

	// Try to find config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Search for config in standard locations
		v.SetConfigName("config")
		v.AddConfigPath(".memoria-retrieve")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".memoria-retrieve"))
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Unmarshal into struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("graph", c.Graph)
	v.Set("vector", c.Vector)
	v.Set("openai", c.OpenAI)
	v.Set("retrieval", c.Retrieval)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
