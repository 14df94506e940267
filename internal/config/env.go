package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads .env files in decreasing order of precedence, then
// falls back to the per-user config directory. godotenv never overrides a
// variable that is already set, so the real environment beats every file
// and the first file to set a key wins. Missing files are fine;
// deployments usually set everything through the real environment.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env", ".env.example"} {
		if _, err := os.Stat(file); err == nil {
			godotenv.Load(file)
		}
	}

	homeDir, _ := os.UserHomeDir()
	homeEnvFile := filepath.Join(homeDir, ".memoria-retrieve", ".env")
	if _, err := os.Stat(homeEnvFile); err == nil {
		godotenv.Load(homeEnvFile)
	}
}

// applyEnvOverrides applies environment variable overrides to cfg. Env
// vars take precedence over both the config file and viper's own MEMORIA_
// prefix scheme, since graph/vector/LLM credentials are usually already
// set that way in a deployment's environment.
func applyEnvOverrides(cfg *Config) {
	cfg.Graph.URI = envString("NEO4J_URI", cfg.Graph.URI)
	cfg.Graph.Username = envString("NEO4J_USERNAME", cfg.Graph.Username)
	cfg.Graph.Password = envString("NEO4J_PASSWORD", cfg.Graph.Password)
	cfg.Graph.Database = envString("NEO4J_DATABASE", cfg.Graph.Database)
	cfg.Graph.PoolSize = envInt("NEO4J_POOL_SIZE", cfg.Graph.PoolSize)

	cfg.Vector.DSN = envString("QDRANT_DSN", cfg.Vector.DSN)
	cfg.Vector.Collection = envString("QDRANT_COLLECTION", cfg.Vector.Collection)
	cfg.Vector.DenseDimension = envInt("QDRANT_DENSE_DIMENSION", cfg.Vector.DenseDimension)

	cfg.OpenAI.APIKey = envString("OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.EmbeddingModel = envString("OPENAI_EMBEDDING_MODEL", cfg.OpenAI.EmbeddingModel)

	cfg.Retrieval.MaxDepth = envInt("RETRIEVAL_MAX_DEPTH", cfg.Retrieval.MaxDepth)
	cfg.Retrieval.MaxBranches = envInt("RETRIEVAL_MAX_BRANCHES", cfg.Retrieval.MaxBranches)
	cfg.Retrieval.MinActivation = envFloat("RETRIEVAL_MIN_ACTIVATION", cfg.Retrieval.MinActivation)
	cfg.Retrieval.TagSimFloor = envFloat("RETRIEVAL_TAG_SIM_FLOOR", cfg.Retrieval.TagSimFloor)
	cfg.Retrieval.MaxRetries = envInt("RETRIEVAL_MAX_RETRIES", cfg.Retrieval.MaxRetries)
	cfg.Retrieval.DenseWeight = envFloat("RETRIEVAL_DENSE_WEIGHT", cfg.Retrieval.DenseWeight)
	cfg.Retrieval.SparseWeight = envFloat("RETRIEVAL_SPARSE_WEIGHT", cfg.Retrieval.SparseWeight)
}

func envString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}
