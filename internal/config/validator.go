package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rohankatakam/memoria-retrieve/internal/rerrors"
)

// ValidationContext specifies what configuration is required
type ValidationContext string

const (
	// ValidationContextServe - serving retrieval queries requires Neo4j and Qdrant
	ValidationContextServe ValidationContext = "serve"
	// ValidationContextIngest - ingesting embeddings requires Qdrant and an OpenAI key
	ValidationContextIngest ValidationContext = "ingest"
	// ValidationContextAll - validate all configuration
	ValidationContextAll ValidationContext = "all"
)

// ValidationResult holds validation results
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// AddError adds an error to the validation result
func (vr *ValidationResult) AddError(format string, args ...interface{}) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, fmt.Sprintf(format, args...))
}

// AddWarning adds a warning to the validation result
func (vr *ValidationResult) AddWarning(format string, args ...interface{}) {
	vr.Warnings = append(vr.Warnings, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any errors
func (vr *ValidationResult) HasErrors() bool {
	return !vr.Valid || len(vr.Errors) > 0
}

// Error returns a formatted error message
func (vr *ValidationResult) Error() string {
	if !vr.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Configuration validation failed:\n")
	for _, err := range vr.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err))
	}

	if len(vr.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, warn := range vr.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn))
		}
	}

	return sb.String()
}

// Validate checks cfg for the serve context against the auto-detected
// deployment mode and returns a plain error, satisfying the config.Load
// contract.
func Validate(cfg *Config) error {
	result := cfg.ValidateWithMode(ValidationContextServe, DetectMode())
	if result.HasErrors() {
		return rerrors.ConfigError(result.Error())
	}
	return nil
}

// ValidateWithMode validates configuration for the given context and deployment mode
func (c *Config) ValidateWithMode(ctx ValidationContext, mode DeploymentMode) *ValidationResult {
	result := &ValidationResult{Valid: true}

	switch ctx {
	case ValidationContextServe:
		c.validateGraph(result, true, mode)
		c.validateVector(result, true)
	case ValidationContextIngest:
		c.validateVector(result, true)
		c.validateOpenAI(result, true)
	case ValidationContextAll:
		c.validateGraph(result, true, mode)
		c.validateVector(result, true)
		c.validateOpenAI(result, false)
		c.validateRetrieval(result)
	}

	return result
}

// ValidateOrFatal validates configuration and panics with a rerrors.Error if invalid
func (c *Config) ValidateOrFatal(ctx ValidationContext) {
	mode := DetectMode()
	result := c.ValidateWithMode(ctx, mode)
	if result.HasErrors() {
		fmt.Println(result.Error())
		fmt.Printf("\nDeployment mode: %s (%s)\n", mode, mode.Description())
		panic(rerrors.ConfigError(result.Error()))
	}

	if len(result.Warnings) > 0 {
		fmt.Println("Configuration warnings:")
		for _, warn := range result.Warnings {
			fmt.Printf("  - %s\n", warn)
		}
	}
}

func (c *Config) validateGraph(result *ValidationResult, required bool, mode DeploymentMode) {
	if c.Graph.URI == "" {
		if required {
			result.AddError("NEO4J_URI is required but not set")
		} else {
			result.AddWarning("NEO4J_URI is not set")
		}
	} else if _, err := url.Parse(c.Graph.URI); err != nil {
		result.AddError("NEO4J_URI is invalid: %v", err)
	} else if strings.Contains(c.Graph.URI, "localhost") && mode.RequiresSecureCredentials() {
		result.AddError("NEO4J_URI uses localhost. In %s mode (%s), provide a remote database URI.", mode, mode.Description())
	}

	if c.Graph.Username == "" {
		result.AddWarning("NEO4J_USERNAME is not set")
	}

	if c.Graph.Password == "" {
		if required {
			result.AddError("NEO4J_PASSWORD is required but not set")
		} else {
			result.AddWarning("NEO4J_PASSWORD is not set")
		}
	} else if mode.RequiresSecureCredentials() {
		insecurePasswords := []string{"password", "neo4j", "changeme"}
		for _, insecure := range insecurePasswords {
			if c.Graph.Password == insecure {
				result.AddError("NEO4J_PASSWORD is set to an insecure default. Not allowed in %s mode.", mode)
			}
		}
	}

	if c.Graph.PoolSize <= 0 {
		result.AddWarning("NEO4J_POOL_SIZE is invalid or not set, will use default")
	}
}

func (c *Config) validateVector(result *ValidationResult, required bool) {
	if c.Vector.DSN == "" {
		if required {
			result.AddError("QDRANT_DSN is required but not set")
		} else {
			result.AddWarning("QDRANT_DSN is not set")
		}
	}

	if c.Vector.Collection == "" {
		result.AddWarning("QDRANT_COLLECTION is not set, will use default")
	}

	if c.Vector.DenseDimension <= 0 {
		result.AddError("vector.dense_dimension must be positive, got %d", c.Vector.DenseDimension)
	}
}

func (c *Config) validateOpenAI(result *ValidationResult, required bool) {
	if c.OpenAI.APIKey == "" {
		if required {
			result.AddError("OPENAI_API_KEY is required but not set")
		} else {
			result.AddWarning("OPENAI_API_KEY is not set. Seed embedding will fail at query time.")
		}
	} else if !strings.HasPrefix(c.OpenAI.APIKey, "sk-") {
		result.AddWarning("OPENAI_API_KEY does not look like an OpenAI key (expected sk- prefix)")
	}

	if c.OpenAI.EmbeddingModel == "" {
		result.AddWarning("openai.embedding_model is not set, will use default")
	}
}

func (c *Config) validateRetrieval(result *ValidationResult) {
	if c.Retrieval.MaxDepth <= 0 {
		result.AddWarning("retrieval.max_depth must be positive; the traversal config will reject it")
	}
	if c.Retrieval.MaxBranches <= 0 {
		result.AddWarning("retrieval.max_branches must be positive; the traversal config will reject it")
	}
	if c.Retrieval.MinActivation < 0 {
		result.AddWarning("retrieval.min_activation must be non-negative; the traversal config will reject it")
	}
	if c.Retrieval.DenseWeight < 0 || c.Retrieval.SparseWeight < 0 {
		result.AddError("retrieval.dense_weight and sparse_weight must be non-negative")
	}
	if c.Retrieval.DenseWeight == 0 && c.Retrieval.SparseWeight == 0 {
		result.AddError("retrieval.dense_weight and sparse_weight cannot both be zero")
	}
}

// RequireGraph checks if graph configuration is valid and returns error if not
func (c *Config) RequireGraph() error {
	result := &ValidationResult{Valid: true}
	c.validateGraph(result, true, DetectMode())
	if result.HasErrors() {
		return rerrors.ConfigError(result.Error())
	}
	return nil
}

// RequireOpenAI checks if the OpenAI API key is configured and returns error if not
func (c *Config) RequireOpenAI() error {
	result := &ValidationResult{Valid: true}
	c.validateOpenAI(result, true)
	if result.HasErrors() {
		return rerrors.ConfigError(result.Error())
	}
	return nil
}
