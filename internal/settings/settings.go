// Package settings persists the user-facing preference record. It is the
// durable mirror of the subset of the configuration root the settings
// flows edit.
package settings

import (
	"github.com/gohands/gohands/internal/config"
)

// Settings is the flat persisted preference record.
type Settings struct {
	// InstallID identifies this installation. Stamped on first store.
	InstallID string `json:"install_id,omitempty"`

	LLMModel   string        `json:"llm_model,omitempty"`
	LLMAPIKey  config.Secret `json:"llm_api_key,omitempty"`
	LLMBaseURL string        `json:"llm_base_url,omitempty"`

	Agent                  string        `json:"agent,omitempty"`
	ConfirmationMode       bool          `json:"confirmation_mode"`
	EnableDefaultCondenser bool          `json:"enable_default_condenser"`
	SearchAPIKey           config.Secret `json:"search_api_key,omitempty"`
}

// New returns a fresh settings record with defaults applied.
func New() *Settings {
	return &Settings{
		Agent:                  config.DefaultAgent,
		EnableDefaultCondenser: true,
	}
}

// Store loads and saves the persisted settings record. Load returns
// (nil, nil) when nothing has been persisted yet.
type Store interface {
	Load() (*Settings, error)
	Store(*Settings) error
}
