package config

// DefaultModel is used when no model has been configured yet.
const DefaultModel = "anthropic/claude-sonnet-4-20250514"

// LLMConfig is a single named LLM profile.
type LLMConfig struct {
	Model           string  `json:"model" toml:"model"`
	APIKey          Secret  `json:"api_key,omitempty" toml:"api_key"`
	BaseURL         string  `json:"base_url,omitempty" toml:"base_url"`
	Temperature     float64 `json:"temperature,omitempty" toml:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens,omitempty" toml:"max_output_tokens"`
	NumRetries      int     `json:"num_retries,omitempty" toml:"num_retries"`
	TimeoutSeconds  int     `json:"timeout_seconds,omitempty" toml:"timeout_seconds"`
}

// DefaultLLM returns the default LLM profile.
func DefaultLLM() LLMConfig {
	return LLMConfig{
		Model:      DefaultModel,
		NumRetries: 4,
	}
}

// Provider derives the provider portion of the configured model id.
// "anthropic/claude-x" -> "anthropic". Returns "" when the model id
// carries no provider prefix.
func (l LLMConfig) Provider() string {
	for i := 0; i < len(l.Model); i++ {
		if l.Model[i] == '/' || l.Model[i] == '.' {
			return l.Model[:i]
		}
	}
	return ""
}
