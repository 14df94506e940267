package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Graph.URI = "bolt://prod-neo4j:7687"
	cfg.Graph.Username = "neo4j"
	cfg.Graph.Password = "s3cr3t-rotated"
	cfg.Vector.DSN = "http://qdrant:6334"
	cfg.OpenAI.APIKey = "sk-test"
	return cfg
}

func TestValidateWithMode_Serve_MissingRequiredFields(t *testing.T) {
	cfg := &Config{}
	result := cfg.ValidateWithMode(ValidationContextServe, ModeDevelopment)

	assert.True(t, result.HasErrors())
	assert.Contains(t, result.Error(), "NEO4J_URI is required")
	assert.Contains(t, result.Error(), "NEO4J_PASSWORD is required")
	assert.Contains(t, result.Error(), "QDRANT_DSN is required")
}

func TestValidateWithMode_Serve_Valid(t *testing.T) {
	cfg := validConfig()
	result := cfg.ValidateWithMode(ValidationContextServe, ModeDevelopment)

	assert.False(t, result.HasErrors())
}

func TestValidateGraph_InsecurePasswordRejectedInPackagedMode(t *testing.T) {
	cfg := validConfig()
	cfg.Graph.Password = "changeme"
	result := cfg.ValidateWithMode(ValidationContextServe, ModePackaged)

	assert.True(t, result.HasErrors())
	assert.True(t, strings.Contains(result.Error(), "insecure default"))
}

func TestValidateGraph_LocalhostRejectedWhenSecureCredentialsRequired(t *testing.T) {
	cfg := validConfig()
	cfg.Graph.URI = "bolt://localhost:7687"
	result := cfg.ValidateWithMode(ValidationContextServe, ModePackaged)

	assert.True(t, result.HasErrors())
	assert.Contains(t, result.Error(), "localhost")
}

func TestValidateOpenAI_WarnsOnNonSkPrefix(t *testing.T) {
	cfg := validConfig()
	cfg.OpenAI.APIKey = "not-an-openai-key"
	result := cfg.ValidateWithMode(ValidationContextIngest, ModeDevelopment)

	assert.False(t, result.HasErrors())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, strings.Join(result.Warnings, "\n"), "sk- prefix")
}

func TestValidateRetrieval_BothWeightsZeroIsAnError(t *testing.T) {
	cfg := validConfig()
	cfg.Retrieval.DenseWeight = 0
	cfg.Retrieval.SparseWeight = 0
	result := cfg.ValidateWithMode(ValidationContextAll, ModeDevelopment)

	assert.True(t, result.HasErrors())
	assert.Contains(t, result.Error(), "cannot both be zero")
}

func TestRequireGraph_FailsWhenPasswordMissing(t *testing.T) {
	cfg := validConfig()
	cfg.Graph.Password = ""

	err := cfg.RequireGraph()
	require.Error(t, err)
}

func TestRequireOpenAI_SucceedsWithKeySet(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.RequireOpenAI())
}
