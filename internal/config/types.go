package config

import "time"

// AppConfig holds runtime startup configuration loaded from YAML and the environment.
type AppConfig struct {
	Port           int              `yaml:"port"`
	Env            string           `yaml:"env"` // "development" | "production"
	LogLevel       string           `yaml:"log_level"`
	Mongo          MongoConfig      `yaml:"mongo"`
	RedisURL       string           `yaml:"redis_url"` // optional; enables idempotent comment writes
	AllowedOrigins []string         `yaml:"allowed_origins"`
	AI             AIProviderConfig `yaml:"ai"`
	Metrics        MetricsConfig    `yaml:"metrics"`
}

type MongoConfig struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// AIProviderConfig describes the upstream LLM completion service.
// An empty APIKey is valid at startup; the recommend endpoint reports it per request.
type AIProviderConfig struct {
	Provider string        `yaml:"provider"`
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"` // 0 keeps the transport default
}

type MetricsConfig struct {
	Disable bool   `yaml:"disable"`
	Path    string `yaml:"path"`
}

type rawAppConfig struct {
	Port               int                 `yaml:"port"`
	Env                string              `yaml:"env"`
	NodeEnv            string              `yaml:"node_env"`
	LogLevel           string              `yaml:"log_level"`
	Mongo              rawMongoConfig      `yaml:"mongo"`
	MongoURI           string              `yaml:"mongodb_uri"`
	MongoDB            string              `yaml:"mongodb_db"`
	RedisURL           string              `yaml:"redis_url"`
	AllowedOrigins     []string            `yaml:"allowed_origins"`
	CORSAllowedOrigins []string            `yaml:"cors_allowed_origins"`
	AI                 rawAIProviderConfig `yaml:"ai"`
	OpenRouterAPIKey   string              `yaml:"openrouter_api_key"`
	Metrics            rawMetricsConfig    `yaml:"metrics"`
}

type rawMongoConfig struct {
	URI            string `yaml:"uri"`
	Database       string `yaml:"database"`
	DBName         string `yaml:"db_name"`
	ConnectTimeout string `yaml:"connect_timeout"`
}

type rawAIProviderConfig struct {
	Provider string `yaml:"provider"`
	Type     string `yaml:"type"`
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type rawMetricsConfig struct {
	Disable *bool  `yaml:"disable"`
	Path    string `yaml:"path"`
}
