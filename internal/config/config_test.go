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
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvMongoURI, EnvMongoDB, EnvPort, EnvOpenRouterAPIKey, EnvAIAPIKey, EnvAIModel,
		EnvAIProvider, EnvAIEndpoint, EnvAITimeout, EnvRedisURL, EnvAppEnv, EnvLogLevel, EnvAllowedOrigins,
	} {
		t.Setenv(key, "")
	}
}

func envMap(values map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestDefaultsWithoutFileOrEnv(t *testing.T) {
	cfg := defaultAppConfig()
	require.NoError(t, applyEnvOverrides(&cfg, envMap(nil)))
	normalizeAppConfig(&cfg)
	require.NoError(t, validate(&cfg))

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "sample_mflix", cfg.Mongo.Database)
	assert.Equal(t, ProviderOpenRouter, cfg.AI.Provider)
	assert.Equal(t, "https://openrouter.ai/api", cfg.AI.Endpoint)
	assert.Equal(t, "mistralai/mixtral-8x7b-instruct", cfg.AI.Model)
	assert.False(t, cfg.AI.HasAPIKey())
	assert.True(t, cfg.IsDev())
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
port: 8081
env: production
mongo:
  uri: mongodb://db:27017
  database: movies
  connect_timeout: 3s
redis_url: redis://cache:6379/1
allowed_origins: [" https://a.example ", ""]
ai:
  type: OpenAI_Compatible
  endpoint: https://llm.example/
  api_key: secret
  model: some/model
  timeout: 45s
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "movies", cfg.Mongo.Database)
	assert.Equal(t, 3*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, []string{"https://a.example"}, cfg.AllowedOrigins)
	assert.Equal(t, ProviderOpenAICompatible, cfg.AI.Provider)
	assert.Equal(t, "https://llm.example", cfg.AI.Endpoint)
	assert.Equal(t, 45*time.Second, cfg.AI.Timeout)
	assert.True(t, cfg.AI.HasAPIKey())
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "port: 1\nnope: true\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	cfg := defaultAppConfig()
	require.NoError(t, applyRawAppConfig(&cfg, rawAppConfig{Port: 7000, MongoURI: "mongodb://file"}))
	require.NoError(t, applyEnvOverrides(&cfg, envMap(map[string]string{
		EnvPort:             "9000",
		EnvMongoURI:         "mongodb://env",
		EnvOpenRouterAPIKey: " key ",
		EnvAIModel:          "other/model",
		EnvAllowedOrigins:   "https://x.example, https://y.example",
		EnvRedisURL:         "",
	})))
	normalizeAppConfig(&cfg)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "mongodb://env", cfg.Mongo.URI)
	assert.Equal(t, "key", cfg.AI.APIKey)
	assert.Equal(t, "other/model", cfg.AI.Model)
	assert.Equal(t, []string{"https://x.example", "https://y.example"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.RedisURL)
}

func TestEnvInvalidPort(t *testing.T) {
	cfg := defaultAppConfig()
	err := applyEnvOverrides(&cfg, envMap(map[string]string{EnvPort: "http"}))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"port out of range", func(c *AppConfig) { c.Port = 70000 }},
		{"empty mongo uri", func(c *AppConfig) { c.Mongo.URI = " " }},
		{"unknown provider", func(c *AppConfig) { c.AI.Provider = "gemini" }},
		{"negative timeout", func(c *AppConfig) { c.AI.Timeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultAppConfig()
			tt.mutate(&cfg)
			assert.Error(t, validate(&cfg))
		})
	}
}

func TestDefaultModelFollowsProvider(t *testing.T) {
	cfg := defaultAppConfig()
	cfg.AI.Provider = "anthropic"
	normalizeAppConfig(&cfg)
	assert.Equal(t, "claude-haiku-4-5-20251001", cfg.AI.Model)
	assert.Empty(t, cfg.AI.Endpoint)

	cfg = defaultAppConfig()
	cfg.AI.Provider = "openai"
	cfg.AI.Model = " gpt-4.1 "
	normalizeAppConfig(&cfg)
	assert.Equal(t, "gpt-4.1", cfg.AI.Model)
}

func TestNormalizeProviderType(t *testing.T) {
	assert.Equal(t, ProviderOpenRouter, normalizeProviderType(""))
	assert.Equal(t, ProviderOpenRouter, normalizeProviderType("Open_Router"))
	assert.Equal(t, ProviderOpenAICompatible, normalizeProviderType("openai compatible"))
	assert.Equal(t, ProviderAnthropic, normalizeProviderType(" Anthropic "))
}
