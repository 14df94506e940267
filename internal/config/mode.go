package config

import (
	"os"
	"strings"
)

// DeploymentMode captures how the retriever is being run, which decides
// where credentials may come from and how strictly they are validated.
type DeploymentMode string

const (
	// ModeDevelopment: running from a source checkout against local
	// docker-compose Neo4j/Qdrant. Passwords from .env are acceptable.
	ModeDevelopment DeploymentMode = "development"

	// ModePackaged: a distributed binary pointed at user-managed stores.
	// Credentials come from env vars or the per-user config file.
	ModePackaged DeploymentMode = "packaged"

	// ModeCI: pipeline execution. Environment variables only, strict
	// validation, no defaults.
	ModeCI DeploymentMode = "ci"
)

// DetectMode determines the deployment context, preferring an explicit
// MEMORIA_MODE override, then CI markers, then source-checkout markers.
func DetectMode() DeploymentMode {
	switch strings.ToLower(os.Getenv("MEMORIA_MODE")) {
	case "development", "dev":
		return ModeDevelopment
	case "packaged", "pkg", "production", "prod":
		return ModePackaged
	case "ci", "cicd":
		return ModeCI
	}

	if isCI() {
		return ModeCI
	}

	for _, marker := range []string{".env", ".git", "go.mod", "Makefile"} {
		if _, err := os.Stat(marker); err == nil {
			return ModeDevelopment
		}
	}

	return ModePackaged
}

func isCI() bool {
	for _, envVar := range []string{
		"CI", "CONTINUOUS_INTEGRATION", "GITHUB_ACTIONS", "GITLAB_CI",
		"CIRCLECI", "TRAVIS", "JENKINS_URL", "BUILDKITE", "DRONE", "TF_BUILD",
	} {
		if os.Getenv(envVar) != "" {
			return true
		}
	}
	return false
}

func (m DeploymentMode) String() string {
	return string(m)
}

// RequiresSecureCredentials reports whether weak/default store passwords
// should be rejected instead of warned about.
func (m DeploymentMode) RequiresSecureCredentials() bool {
	return m == ModePackaged || m == ModeCI
}

// Description returns a human-readable description of the mode.
func (m DeploymentMode) Description() string {
	switch m {
	case ModeDevelopment:
		return "local development checkout"
	case ModePackaged:
		return "packaged installation"
	case ModeCI:
		return "CI/CD pipeline"
	default:
		return "unknown mode"
	}
}
