package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized on top of the YAML file.
const (
	EnvMongoURI         = "MONGODB_URI"
	EnvMongoDB          = "MONGODB_DB"
	EnvPort             = "PORT"
	EnvOpenRouterAPIKey = "OPENROUTER_API_KEY"
	EnvAIAPIKey         = "AI_API_KEY"
	EnvAIModel          = "AI_MODEL"
	EnvAIProvider       = "AI_PROVIDER"
	EnvAIEndpoint       = "AI_ENDPOINT"
	EnvAITimeout        = "AI_TIMEOUT"
	EnvRedisURL         = "REDIS_URL"
	EnvAppEnv           = "APP_ENV"
	EnvLogLevel         = "LOG_LEVEL"
	EnvAllowedOrigins   = "ALLOWED_ORIGINS"
)

type lookupFunc func(key string) (string, bool)

// loadDotEnv fills the process environment from a local .env file when present.
// Variables already set in the environment win.
func loadDotEnv() {
	_ = godotenv.Load()
}

func applyEnvOverrides(cfg *AppConfig, lookup lookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}

	if v, ok := get(EnvMongoURI); ok {
		cfg.Mongo.URI = v
	}
	if v, ok := get(EnvMongoDB); ok {
		cfg.Mongo.Database = v
	}
	if v, ok := get(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Port = port
	}
	if v, ok := get(EnvAIAPIKey); ok {
		cfg.AI.APIKey = v
	}
	if v, ok := get(EnvOpenRouterAPIKey); ok {
		cfg.AI.APIKey = v
	}
	if v, ok := get(EnvAIModel); ok {
		cfg.AI.Model = v
	}
	if v, ok := get(EnvAIProvider); ok {
		cfg.AI.Provider = v
	}
	if v, ok := get(EnvAIEndpoint); ok {
		cfg.AI.Endpoint = v
	}
	if v, ok := get(EnvAITimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvAITimeout, v, err)
		}
		cfg.AI.Timeout = d
	}
	if v, ok := get(EnvRedisURL); ok {
		cfg.RedisURL = v
	}
	if v, ok := get(EnvAppEnv); ok {
		cfg.Env = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := get(EnvAllowedOrigins); ok {
		cfg.AllowedOrigins = normalizeOrigins(strings.Split(v, ","))
	}
	return nil
}
