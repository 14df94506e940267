package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentialManager(t *testing.T) *CredentialManager {
	t.Helper()
	return &CredentialManager{
		mode:       ModeDevelopment,
		configPath: filepath.Join(t.TempDir(), "config.yaml"),
	}
}

func TestGetOpenAIAPIKey_PrefersEnvOverConfigFile(t *testing.T) {
	cm := testCredentialManager(t)
	require.NoError(t, cm.SaveCredentials(Credentials{OpenAIAPIKey: "sk-from-file"}))
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	key, err := cm.GetOpenAIAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", key)
}

func TestGetOpenAIAPIKey_FallsBackToConfigFile(t *testing.T) {
	cm := testCredentialManager(t)
	require.NoError(t, cm.SaveCredentials(Credentials{OpenAIAPIKey: "sk-from-file"}))

	key, err := cm.GetOpenAIAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", key)
}

func TestGetOpenAIAPIKey_ErrorsWhenNowhereToFind(t *testing.T) {
	cm := testCredentialManager(t)

	_, err := cm.GetOpenAIAPIKey()
	assert.Error(t, err)
}

func TestSaveCredentials_RejectsKeyWithoutSkPrefix(t *testing.T) {
	cm := testCredentialManager(t)

	err := cm.SaveCredentials(Credentials{OpenAIAPIKey: "not-a-key"})
	assert.Error(t, err)
}

func TestHasCredentials_TrueAfterSave(t *testing.T) {
	cm := testCredentialManager(t)
	assert.False(t, cm.HasCredentials())

	require.NoError(t, cm.SaveCredentials(Credentials{OpenAIAPIKey: "sk-abc"}))
	assert.True(t, cm.HasCredentials())
}
