package config

// AgentConfig is a single named agent profile.
type AgentConfig struct {
	// LLMProfile names the LLM profile this agent uses. Empty means the
	// default "llm" profile.
	LLMProfile string `json:"llm_profile,omitempty" toml:"llm_profile"`

	Condenser CondenserConfig `json:"condenser" toml:"condenser"`

	EnableBrowsing   bool `json:"enable_browsing" toml:"enable_browsing"`
	EnableEditor     bool `json:"enable_editor" toml:"enable_editor"`
	EnableCmd        bool `json:"enable_cmd" toml:"enable_cmd"`
	EnableMCP        bool `json:"enable_mcp" toml:"enable_mcp"`
	EnablePromptExt  bool `json:"enable_prompt_extensions" toml:"enable_prompt_extensions"`
	EnableHistTrunc  bool `json:"enable_history_truncation" toml:"enable_history_truncation"`
}

// DefaultAgentConfig returns the default agent profile.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		Condenser:       NoopCondenser(),
		EnableBrowsing:  true,
		EnableEditor:    true,
		EnableCmd:       true,
		EnableMCP:       true,
		EnablePromptExt: true,
		EnableHistTrunc: true,
	}
}
