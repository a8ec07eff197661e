package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config file (optional when it is the default path),
// then applies .env and process environment overrides.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		raw, err := decodeRawAppConfig(content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
		if err := applyRawAppConfig(&cfg, raw); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultConfigPath:
		// running from environment only
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	loadDotEnv()
	if err := applyEnvOverrides(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	normalizeAppConfig(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeRawAppConfig(content []byte) (rawAppConfig, error) {
	raw := rawAppConfig{}
	if len(bytes.TrimSpace(content)) == 0 {
		return raw, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return rawAppConfig{}, err
	}
	return raw, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:     defaultPort,
		Env:      defaultEnv,
		LogLevel: "info",
		Mongo: MongoConfig{
			URI:            defaultMongoURI,
			Database:       defaultMongoDB,
			ConnectTimeout: 10 * time.Second,
		},
		AI: AIProviderConfig{
			Provider: defaultAIProvider,
		},
		Metrics: MetricsConfig{Path: "/metrics"},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) error {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}

	if v := strings.TrimSpace(raw.Mongo.URI); v != "" {
		cfg.Mongo.URI = v
	}
	if v := strings.TrimSpace(raw.MongoURI); v != "" {
		cfg.Mongo.URI = v
	}
	if v := strings.TrimSpace(raw.Mongo.Database); v != "" {
		cfg.Mongo.Database = v
	}
	if v := strings.TrimSpace(raw.Mongo.DBName); v != "" {
		cfg.Mongo.Database = v
	}
	if v := strings.TrimSpace(raw.MongoDB); v != "" {
		cfg.Mongo.Database = v
	}
	if v := strings.TrimSpace(raw.Mongo.ConnectTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid mongo.connect_timeout %q: %w", v, err)
		}
		cfg.Mongo.ConnectTimeout = d
	}

	if v := strings.TrimSpace(raw.RedisURL); v != "" {
		cfg.RedisURL = v
	}

	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSAllowedOrigins)
	}

	if v := strings.TrimSpace(raw.AI.Type); v != "" {
		cfg.AI.Provider = v
	}
	if v := strings.TrimSpace(raw.AI.Provider); v != "" {
		cfg.AI.Provider = v
	}
	if v := strings.TrimSpace(raw.AI.Endpoint); v != "" {
		cfg.AI.Endpoint = v
	}
	if v := strings.TrimSpace(raw.AI.Model); v != "" {
		cfg.AI.Model = v
	}
	if v := strings.TrimSpace(raw.AI.APIKey); v != "" {
		cfg.AI.APIKey = v
	}
	if v := strings.TrimSpace(raw.OpenRouterAPIKey); v != "" {
		cfg.AI.APIKey = v
	}
	if v := strings.TrimSpace(raw.AI.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid ai.timeout %q: %w", v, err)
		}
		cfg.AI.Timeout = d
	}

	if raw.Metrics.Disable != nil {
		cfg.Metrics.Disable = *raw.Metrics.Disable
	}
	if v := strings.TrimSpace(raw.Metrics.Path); v != "" {
		cfg.Metrics.Path = v
	}
	return nil
}

func validate(cfg *AppConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if strings.TrimSpace(cfg.Mongo.URI) == "" {
		return errors.New("mongo uri is empty")
	}
	if strings.TrimSpace(cfg.Mongo.Database) == "" {
		return errors.New("mongo database is empty")
	}
	switch cfg.AI.Provider {
	case ProviderOpenRouter, ProviderOpenAICompatible, ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown ai provider %q", cfg.AI.Provider)
	}
	if cfg.AI.Timeout < 0 {
		return fmt.Errorf("invalid ai timeout %s", cfg.AI.Timeout)
	}
	return nil
}

func (c *AppConfig) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasAPIKey reports whether an LLM credential is configured.
func (c AIProviderConfig) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}
