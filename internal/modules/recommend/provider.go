package recommend

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/mflix-space/core/internal/config"
)

// Completer sends one system+user exchange to a completion service and
// returns the raw reply text.
//
// Implementations return ErrConfiguration before any network I/O when no
// credential is set, an error matching ErrUpstream for transport failures
// and non-2xx replies, and ErrEmptyResponse when the reply carries no text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// NewCompleter selects the Completer for the configured provider type.
// A nil httpClient uses one with the configured timeout.
func NewCompleter(cfg config.AIProviderConfig, httpClient *http.Client) (Completer, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	switch cfg.Provider {
	case config.ProviderOpenRouter, config.ProviderOpenAICompatible:
		return &chatCompleter{
			endpoint: normalizeChatEndpoint(cfg.Endpoint),
			apiKey:   strings.TrimSpace(cfg.APIKey),
			model:    cfg.Model,
			client:   httpClient,
		}, nil
	case config.ProviderOpenAI, config.ProviderAnthropic:
		return newSDKCompleter(cfg, httpClient), nil
	}
	return nil, fmt.Errorf("unsupported ai provider %q", cfg.Provider)
}

// normalizeChatEndpoint strips a trailing /v1 so the caller can append
// /v1/chat/completions.
func normalizeChatEndpoint(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return "https://openrouter.ai/api"
	}

	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimSuffix(strings.TrimRight(base, "/"), "/v1")
	}

	path := strings.TrimRight(parsed.Path, "/")
	parsed.Path = strings.TrimSuffix(path, "/v1")
	return strings.TrimRight(parsed.String(), "/")
}

// normalizeSDKBaseURL makes sure an OpenAI SDK base URL ends in /v1.
func normalizeSDKBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}
