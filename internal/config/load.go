package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"

	logging "github.com/gohands/gohands/internal/logging"
	"github.com/gohands/gohands/internal/paths"
)

// Load builds the configuration root: defaults first, then an optional
// gohands.toml overlay (./gohands.toml takes priority over
// ~/.gohands/gohands.toml). Missing file is not an error.
func Load() (*Config, error) {
	cfg := New()

	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		logging.L_debug("config: no gohands.toml found, using defaults")
		return cfg, nil
	}

	if err := applyFile(cfg, path); err != nil {
		return nil, err
	}

	logging.L_debug("config: loaded", "path", path)
	return cfg, nil
}

// applyFile overlays the TOML file at path onto cfg. File values win over
// defaults; fields absent from the file keep their defaults.
func applyFile(cfg *Config, path string) error {
	var overlay Config
	if _, err := toml.DecodeFile(path, &overlay); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := mergo.Merge(cfg, overlay, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge config overlay: %w", err)
	}

	// mergo never replaces a populated map wholesale, so profiles declared
	// in the file land next to the defaults. Re-assert the invariant that
	// the default profiles exist in case the file was hand-edited into a
	// strange shape.
	if _, ok := cfg.LLMs[DefaultLLMProfile]; !ok {
		cfg.LLMs[DefaultLLMProfile] = DefaultLLM()
	}
	if _, ok := cfg.Agents[DefaultAgentProfile]; !ok {
		cfg.Agents[DefaultAgentProfile] = DefaultAgentConfig()
	}

	return nil
}
