package config

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// ConfirmationMode requires user approval before the agent executes
	// an action.
	ConfirmationMode bool   `json:"confirmation_mode" toml:"confirmation_mode"`
	SecurityAnalyzer string `json:"security_analyzer,omitempty" toml:"security_analyzer"`
}

// SandboxConfig holds sandbox runtime settings. The sandbox itself is an
// opaque collaborator; only its knobs live here.
type SandboxConfig struct {
	TimeoutSeconds     int    `json:"timeout_seconds" toml:"timeout_seconds"`
	BaseContainerImage string `json:"base_container_image,omitempty" toml:"base_container_image"`
	UseHostNetwork     bool   `json:"use_host_network" toml:"use_host_network"`
	EnableGPU          bool   `json:"enable_gpu" toml:"enable_gpu"`
	VolumeMounts       string `json:"volume_mounts,omitempty" toml:"volume_mounts"`
}

// DefaultSandbox returns the default sandbox settings.
func DefaultSandbox() SandboxConfig {
	return SandboxConfig{
		TimeoutSeconds: 120,
	}
}

// MCPConfig lists configured MCP servers.
type MCPConfig struct {
	SSEServers   []MCPSSEServer   `json:"sse_servers,omitempty" toml:"sse_servers"`
	StdioServers []MCPStdioServer `json:"stdio_servers,omitempty" toml:"stdio_servers"`
}

// MCPSSEServer is a server reached over SSE.
type MCPSSEServer struct {
	URL    string `json:"url" toml:"url"`
	APIKey Secret `json:"api_key,omitempty" toml:"api_key"`
}

// MCPStdioServer is a server spawned as a subprocess.
type MCPStdioServer struct {
	Name    string   `json:"name" toml:"name"`
	Command string   `json:"command" toml:"command"`
	Args    []string `json:"args,omitempty" toml:"args"`
}

// CLIConfig holds terminal interaction preferences.
type CLIConfig struct {
	ViMode         bool `json:"vi_mode" toml:"vi_mode"`
	MultilineInput bool `json:"multiline_input" toml:"multiline_input"`
}
