package config

import (
	"strings"
)

func normalizeAppConfig(cfg *AppConfig) {
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.AI.Provider = normalizeProviderType(cfg.AI.Provider)
	cfg.AI.APIKey = strings.TrimSpace(cfg.AI.APIKey)
	cfg.AI.Endpoint = strings.TrimRight(strings.TrimSpace(cfg.AI.Endpoint), "/")
	if cfg.AI.Endpoint == "" && (cfg.AI.Provider == ProviderOpenRouter || cfg.AI.Provider == ProviderOpenAICompatible) {
		cfg.AI.Endpoint = defaultAIEndpoint
	}
	cfg.AI.Model = strings.TrimSpace(cfg.AI.Model)
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultModelFor(cfg.AI.Provider)
	}
	if !strings.HasPrefix(cfg.Metrics.Path, "/") {
		cfg.Metrics.Path = "/" + cfg.Metrics.Path
	}
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}

// normalizeProviderType folds spelling variants ("OpenAI_Compatible", "open router").
func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	switch t {
	case "":
		return defaultAIProvider
	case "openaicompatible":
		return ProviderOpenAICompatible
	case "open-router":
		return ProviderOpenRouter
	}
	return t
}

func defaultModelFor(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return defaultOpenAIModel
	case ProviderAnthropic:
		return defaultAnthropicModel
	}
	return defaultAIModel
}
