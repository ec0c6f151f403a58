package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAPIKeySecretsFileWins(t *testing.T) {
	dir := t.TempDir()
	secrets := filepath.Join(dir, "secrets.env")
	require.NoError(t, os.WriteFile(secrets, []byte("OPENROUTER_API_KEY=sk-from-file\n"), 0o600))
	t.Setenv("OPENROUTER_API_KEY", "sk-from-env")

	assert.Equal(t, "sk-from-file", ResolveAPIKey(secrets))
}

func TestResolveAPIKeyFallsBackToEnv(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-from-env")

	assert.Equal(t, "sk-from-env", ResolveAPIKey(filepath.Join(t.TempDir(), "missing.env")))
}

func TestResolveAPIKeyEmptyWhenAbsent(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	assert.Empty(t, ResolveAPIKey(filepath.Join(t.TempDir(), "missing.env")))
}

func TestResolveAPIKeyIgnoresEmptyFileEntry(t *testing.T) {
	dir := t.TempDir()
	secrets := filepath.Join(dir, "secrets.env")
	require.NoError(t, os.WriteFile(secrets, []byte("OPENROUTER_API_KEY=\n"), 0o600))
	t.Setenv("OPENROUTER_API_KEY", "sk-from-env")

	assert.Equal(t, "sk-from-env", ResolveAPIKey(secrets))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouterBase)
	assert.Equal(t, "https://kirax.ia", cfg.OpenRouterReferer)
	assert.Equal(t, "Kirax IA", cfg.OpenRouterAppTitle)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes)
}
