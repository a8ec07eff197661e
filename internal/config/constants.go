package config

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 5000
	defaultEnv        = "development"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultMongoDB    = "sample_mflix"

	defaultAIProvider     = ProviderOpenRouter
	defaultAIEndpoint     = "https://openrouter.ai/api"
	defaultAIModel        = "mistralai/mixtral-8x7b-instruct"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-haiku-4-5-20251001"
)

// Supported AI provider types.
const (
	ProviderOpenRouter       = "openrouter"
	ProviderOpenAICompatible = "openai-compatible"
	ProviderOpenAI           = "openai"
	ProviderAnthropic        = "anthropic"
)
