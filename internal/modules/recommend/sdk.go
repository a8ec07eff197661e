package recommend

import (
	"context"
	"net/http"
	"strings"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/mflix-space/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	jetai "go.jetify.com/ai"
	jetapi "go.jetify.com/ai/api"
	jetanthropic "go.jetify.com/ai/provider/anthropic"
	jetopenai "go.jetify.com/ai/provider/openai"
)

// sdkCompleter drives the OpenAI or Anthropic SDK through the jetify
// language model abstraction. SDK retries are disabled.
type sdkCompleter struct {
	model jetapi.LanguageModel
}

func newSDKCompleter(cfg config.AIProviderConfig, httpClient *http.Client) *sdkCompleter {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return &sdkCompleter{}
	}
	return &sdkCompleter{model: buildLanguageModel(cfg, apiKey, httpClient)}
}

func buildLanguageModel(cfg config.AIProviderConfig, apiKey string, httpClient *http.Client) jetapi.LanguageModel {
	modelID := strings.TrimSpace(cfg.Model)
	endpoint := strings.TrimSpace(cfg.Endpoint)

	if cfg.Provider == config.ProviderAnthropic {
		opts := []anthropicoption.RequestOption{
			anthropicoption.WithAPIKey(apiKey),
			anthropicoption.WithMaxRetries(0),
			anthropicoption.WithHTTPClient(httpClient),
		}
		if endpoint != "" {
			opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
		}
		client := anthropicclient.NewClient(opts...)
		return jetanthropic.NewLanguageModel(modelID, jetanthropic.WithClient(client))
	}

	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(apiKey),
		openaioption.WithMaxRetries(0),
		openaioption.WithHTTPClient(httpClient),
	}
	if normalized := normalizeSDKBaseURL(endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}
	client := openaiclient.NewClient(opts...)
	return jetopenai.NewLanguageModel(modelID, jetopenai.WithClient(client))
}

func (s *sdkCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	if s.model == nil {
		return "", ErrConfiguration
	}

	messages := []jetapi.Message{
		&jetapi.SystemMessage{Content: system},
		&jetapi.UserMessage{Content: jetapi.ContentFromText(user)},
	}
	resp, err := jetai.GenerateText(ctx, messages, jetai.WithModel(s.model))
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	return extractResponseText(resp)
}

func extractResponseText(resp *jetapi.Response) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	var full strings.Builder
	for _, block := range resp.Content {
		textBlock, ok := block.(*jetapi.TextBlock)
		if !ok || textBlock.Text == "" {
			continue
		}
		full.WriteString(textBlock.Text)
	}
	text := full.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
