// Package config holds the gohands configuration root: named LLM and
// agent profiles plus the scalar application settings. The root is built
// once per process with defaults and mutated in place by the settings
// flows.
package config

import (
	logging "github.com/gohands/gohands/internal/logging"
)

// Names of the implicit default profiles. Both always exist on a Config
// returned by New.
const (
	DefaultLLMProfile   = "llm"
	DefaultAgentProfile = "agent"
)

// DefaultAgent is the agent used when nothing else is configured.
const DefaultAgent = "CodeActAgent"

// DefaultMaxIterations caps the agent loop per task.
const DefaultMaxIterations = 500

// Config is the application configuration root.
type Config struct {
	LLMs   map[string]LLMConfig   `json:"llms" toml:"llms"`
	Agents map[string]AgentConfig `json:"agents" toml:"agents"`

	DefaultAgent string `json:"default_agent" toml:"default_agent"`

	Security SecurityConfig `json:"security" toml:"security"`
	Sandbox  SandboxConfig  `json:"sandbox" toml:"sandbox"`
	MCP      MCPConfig      `json:"mcp" toml:"mcp"`
	CLI      CLIConfig      `json:"cli" toml:"cli"`

	Runtime       string `json:"runtime" toml:"runtime"`
	FileStore     string `json:"file_store" toml:"file_store"`
	FileStorePath string `json:"file_store_path" toml:"file_store_path"`
	CacheDir      string `json:"cache_dir" toml:"cache_dir"`

	SearchAPIKey           Secret  `json:"search_api_key,omitempty" toml:"search_api_key"`
	EnableDefaultCondenser bool    `json:"enable_default_condenser" toml:"enable_default_condenser"`
	MaxIterations          int     `json:"max_iterations" toml:"max_iterations"`
	MaxBudgetPerTask       float64 `json:"max_budget_per_task,omitempty" toml:"max_budget_per_task"`

	DisableColor bool `json:"disable_color" toml:"disable_color"`
	Debug        bool `json:"debug" toml:"debug"`
}

// New returns a Config populated with defaults. The "llm" and "agent"
// profiles are created here, up front, so lookups never mutate the root.
func New() *Config {
	return &Config{
		LLMs: map[string]LLMConfig{
			DefaultLLMProfile: DefaultLLM(),
		},
		Agents: map[string]AgentConfig{
			DefaultAgentProfile: DefaultAgentConfig(),
		},
		DefaultAgent:           DefaultAgent,
		Security:               SecurityConfig{},
		Sandbox:                DefaultSandbox(),
		MCP:                    MCPConfig{},
		CLI:                    CLIConfig{},
		Runtime:                "docker",
		FileStore:              "local",
		FileStorePath:          "~/.gohands",
		CacheDir:               "/tmp/cache",
		EnableDefaultCondenser: true,
		MaxIterations:          DefaultMaxIterations,
	}
}

// GetLLMConfig returns the LLM profile with the given name. An empty name
// or an unknown name resolves to the default profile; unknown names are
// logged since they usually indicate a typo in an agent profile.
func (c *Config) GetLLMConfig(name string) LLMConfig {
	if name == "" {
		name = DefaultLLMProfile
	}
	if llm, ok := c.LLMs[name]; ok {
		return llm
	}
	if name != DefaultLLMProfile {
		logging.L_warn("config: llm profile not found, using default", "name", name)
	}
	return c.LLMs[DefaultLLMProfile]
}

// SetLLMConfig stores an LLM profile under the given name. An empty name
// targets the default profile.
func (c *Config) SetLLMConfig(llm LLMConfig, name string) {
	if name == "" {
		name = DefaultLLMProfile
	}
	c.LLMs[name] = llm
}

// GetAgentConfig returns the agent profile with the given name, falling
// back to the default profile for empty or unknown names.
func (c *Config) GetAgentConfig(name string) AgentConfig {
	if name == "" {
		name = DefaultAgentProfile
	}
	if agent, ok := c.Agents[name]; ok {
		return agent
	}
	return c.Agents[DefaultAgentProfile]
}

// SetAgentConfig stores an agent profile under the given name. An empty
// name targets the default profile.
func (c *Config) SetAgentConfig(agent AgentConfig, name string) {
	if name == "" {
		name = DefaultAgentProfile
	}
	c.Agents[name] = agent
}

// GetLLMConfigFromAgent resolves the LLM profile an agent profile points
// at (its llm_profile field), falling back to the default LLM profile.
func (c *Config) GetLLMConfigFromAgent(name string) LLMConfig {
	agent := c.GetAgentConfig(name)
	return c.GetLLMConfig(agent.LLMProfile)
}

// AgentToLLMConfigMap returns the resolved LLM profile for every agent
// profile, keyed by agent profile name.
func (c *Config) AgentToLLMConfigMap() map[string]LLMConfig {
	out := make(map[string]LLMConfig, len(c.Agents))
	for name := range c.Agents {
		out[name] = c.GetLLMConfigFromAgent(name)
	}
	return out
}
