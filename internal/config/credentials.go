package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rohankatakam/memoria-retrieve/internal/rerrors"
)

// CredentialManager handles credential retrieval with priority chain
// Priority: Environment Variable → Config File
type CredentialManager struct {
	mode       DeploymentMode
	configPath string
}

// Credentials holds user credentials not sourced from the environment.
type Credentials struct {
	OpenAIAPIKey string `yaml:"openai_api_key"`
}

// NewCredentialManager creates a new credential manager
func NewCredentialManager() *CredentialManager {
	homeDir, _ := os.UserHomeDir()
	return &CredentialManager{
		mode:       DetectMode(),
		configPath: filepath.Join(homeDir, ".config", "memoria-retrieve", "config.yaml"),
	}
}

// GetOpenAIAPIKey retrieves the OpenAI API key using the priority chain.
func (cm *CredentialManager) GetOpenAIAPIKey() (string, error) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	if creds, err := cm.loadConfigFile(); err == nil && creds.OpenAIAPIKey != "" {
		return creds.OpenAIAPIKey, nil
	}

	return "", rerrors.ConfigErrorf(
		"OPENAI_API_KEY not found. Set it via:\n"+
			"  1. Environment variable: export OPENAI_API_KEY=sk-...\n"+
			"  2. Config file: %s", cm.configPath)
}

// SaveCredentials saves credentials to the config file.
func (cm *CredentialManager) SaveCredentials(creds Credentials) error {
	if creds.OpenAIAPIKey != "" && !strings.HasPrefix(creds.OpenAIAPIKey, "sk-") {
		return rerrors.ValidationError("OpenAI API key should start with 'sk-'")
	}
	return cm.saveConfigFile(creds)
}

func (cm *CredentialManager) loadConfigFile() (*Credentials, error) {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return nil, err
	}

	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

func (cm *CredentialManager) saveConfigFile(creds Credentials) error {
	dir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(creds)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return err
	}

	return nil
}

// GetMode returns the current deployment mode
func (cm *CredentialManager) GetMode() DeploymentMode {
	return cm.mode
}

// GetConfigPath returns the path to the config file
func (cm *CredentialManager) GetConfigPath() string {
	return cm.configPath
}

// HasCredentials checks if an OpenAI API key is configured anywhere.
func (cm *CredentialManager) HasCredentials() bool {
	if os.Getenv("OPENAI_API_KEY") != "" {
		return true
	}

	if creds, err := cm.loadConfigFile(); err == nil && creds.OpenAIAPIKey != "" {
		return true
	}

	return false
}
