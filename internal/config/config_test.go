package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfigFrom_Defaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: test
platforms:
  polymarket:
    base_url: "https://gamma-api.polymarket.com"
`)

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, DefaultAnalyzeMaxToken, cfg.LLM.AnalyzeMaxTokens)
	assert.Equal(t, DefaultScanMaxToken, cfg.LLM.ScanMaxTokens)
	assert.Equal(t, DefaultScanLimit, cfg.Scan.DefaultLimit)
	assert.Equal(t, "https://gamma-api.polymarket.com", cfg.Polymarket().BaseURL)
}

func TestLoadConfigFrom_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, `
database:
  enabled: true
  dsn: "postgres://yaml@localhost/db"
  conn_max_lifetime: 30m
platforms:
  polymarket:
    proxy: "http://yaml-proxy:8080"
llm:
  provider: Gemini
  claude:
    api_key: "yaml-key"
`)
	t.Setenv("ANTHROPIC_API_KEY", "env-key")
	t.Setenv("GEMINI_API_KEY", "gemini-env-key")
	t.Setenv("POLYMARKET_PROXY", "http://env-proxy:3128")
	t.Setenv("DATABASE_DSN", "postgres://env@localhost/db")

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.LLM.Claude.APIKey)
	assert.Equal(t, "gemini-env-key", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "http://env-proxy:3128", cfg.Polymarket().Proxy)
	assert.Equal(t, "postgres://env@localhost/db", cfg.Database.DSN)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoadConfigFrom_Missing(t *testing.T) {
	_, err := LoadConfigFrom(t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{Provider: "openai"}}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Database: DatabaseConfig{Enabled: true}}
	assert.Error(t, cfg.Validate())

	cfg = &Config{LLM: LLMConfig{AnalyzeMaxTokens: 2000}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2000, cfg.LLM.AnalyzeMaxTokens)
	assert.Equal(t, "release", cfg.Server.Mode)
}
