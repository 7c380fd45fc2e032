package setup

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/sashabaranov/go-openai"

	. "github.com/gohands/gohands/internal/logging"
)

// VerifyFunc checks provider credentials and reports how many models the
// account can reach.
type VerifyFunc func(ctx context.Context, provider, apiKey, baseURL string) (int, error)

// ErrVerifyUnsupported marks providers without a credential check.
var ErrVerifyUnsupported = errors.New("no credential check for this provider")

// VerifyCredentials lists the provider's models with the given key.
// Anthropic gets a native check; anything with a base URL (or openai
// itself) is probed as an OpenAI-compatible endpoint. Everything else
// returns ErrVerifyUnsupported.
func VerifyCredentials(ctx context.Context, provider, apiKey, baseURL string) (int, error) {
	switch {
	case provider == "anthropic" && baseURL == "":
		return countAnthropicModels(ctx, apiKey)
	case provider == "openai" || baseURL != "":
		return countOpenAIModels(ctx, apiKey, baseURL)
	default:
		return 0, ErrVerifyUnsupported
	}
}

func countAnthropicModels(ctx context.Context, apiKey string) (int, error) {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	page, err := client.Models.List(ctx, anthropic.ModelListParams{})
	if err != nil {
		return 0, err
	}

	L_debug("setup: listed Anthropic models", "count", len(page.Data))
	return len(page.Data), nil
}

func countOpenAIModels(ctx context.Context, apiKey, baseURL string) (int, error) {
	conf := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		conf.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	client := openai.NewClientWithConfig(conf)

	list, err := client.ListModels(ctx)
	if err != nil {
		return 0, err
	}

	L_debug("setup: listed OpenAI-compatible models", "url", conf.BaseURL, "count", len(list.Models))
	return len(list.Models), nil
}
