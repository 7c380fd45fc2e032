package config

// Condenser types. The condensers themselves live in the agent runtime;
// the config layer only selects and parameterizes them.
const (
	CondenserNoop               = "noop"
	CondenserConversationWindow = "conversation_window"
	CondenserLLMSummarizing     = "llm"
	CondenserPipeline           = "pipeline"
)

// CondenserConfig selects a memory condensation strategy for an agent
// profile. It is a tagged union: Type decides which of the remaining
// fields apply.
type CondenserConfig struct {
	Type string `json:"type" toml:"type"`

	// LLMProfile names the LLM profile a summarizing condenser uses.
	LLMProfile string `json:"llm_profile,omitempty" toml:"llm_profile"`
	KeepFirst  int    `json:"keep_first,omitempty" toml:"keep_first"`
	MaxSize    int    `json:"max_size,omitempty" toml:"max_size"`

	// Condensers holds the stages of a pipeline condenser, in order.
	Condensers []CondenserConfig `json:"condensers,omitempty" toml:"condensers"`
}

// NoopCondenser keeps history untouched.
func NoopCondenser() CondenserConfig {
	return CondenserConfig{Type: CondenserNoop}
}

// ConversationWindowCondenser keeps a sliding window of recent events.
func ConversationWindowCondenser() CondenserConfig {
	return CondenserConfig{Type: CondenserConversationWindow}
}

// LLMSummarizingCondenser summarizes dropped history with the LLM profile
// named by llmProfile.
func LLMSummarizingCondenser(llmProfile string) CondenserConfig {
	return CondenserConfig{
		Type:       CondenserLLMSummarizing,
		LLMProfile: llmProfile,
	}
}

// PipelineCondenser runs the given condensers in order.
func PipelineCondenser(stages ...CondenserConfig) CondenserConfig {
	return CondenserConfig{
		Type:       CondenserPipeline,
		Condensers: stages,
	}
}
