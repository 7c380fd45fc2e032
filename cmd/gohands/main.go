package main

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/gohands/gohands/internal/config"
	. "github.com/gohands/gohands/internal/logging"
	"github.com/gohands/gohands/internal/paths"
	"github.com/gohands/gohands/internal/settings"
	"github.com/gohands/gohands/internal/setup"
)

const version = "0.1.0"

// runContext carries the wired application state into command Run methods.
type runContext struct {
	cfg   *config.Config
	store *settings.FileStore
	flows *setup.Flows
}

type cli struct {
	Debug bool `help:"Enable debug logging." short:"d"`

	Settings settingsCmd `cmd:"" help:"Interactive settings flows."`
	Config   configCmd   `cmd:"" help:"Configuration file helpers."`
	Version  versionCmd  `cmd:"" help:"Print the version."`
}

type settingsCmd struct {
	Basic    settingsBasicCmd    `cmd:"" default:"1" help:"Guided LLM setup (provider, model, API key)."`
	Advanced settingsAdvancedCmd `cmd:"" help:"Expert LLM setup (custom model, base URL, agent)."`
	Search   settingsSearchCmd   `cmd:"" help:"Manage the search API key."`
	Show     settingsShowCmd     `cmd:"" help:"Display the current settings."`
	Restore  settingsRestoreCmd  `cmd:"" help:"Restore settings.json from a rotating backup."`
}

type (
	settingsBasicCmd    struct{}
	settingsAdvancedCmd struct{}
	settingsSearchCmd   struct{}
	settingsShowCmd     struct{}
)

type settingsRestoreCmd struct {
	Index int  `help:"Backup index to restore (0 = newest)." default:"0"`
	List  bool `help:"List available backups instead of restoring." short:"l"`
}

func (c *settingsRestoreCmd) Run(rc *runContext) error {
	path := rc.store.Path()

	if c.List {
		backups := config.ListBackups(path)
		if len(backups) == 0 {
			fmt.Println("No backups found.")
			return nil
		}
		for _, b := range backups {
			fmt.Printf("%3d  %s  %s  %d bytes\n",
				b.Index, b.ModTime.Format("2006-01-02 15:04:05"), b.Path, b.Size)
		}
		return nil
	}

	if err := config.RestoreBackup(path, c.Index); err != nil {
		return err
	}
	fmt.Printf("Restored settings from backup %d.\n", c.Index)
	return nil
}

func (c *settingsBasicCmd) Run(rc *runContext) error { return rc.flows.BasicLLM() }

func (c *settingsAdvancedCmd) Run(rc *runContext) error { return rc.flows.AdvancedLLM() }

func (c *settingsSearchCmd) Run(rc *runContext) error { return rc.flows.SearchAPI() }

func (c *settingsShowCmd) Run(rc *runContext) error { return rc.flows.ShowSettings() }

type configCmd struct {
	Show configShowCmd `cmd:"" default:"1" help:"Print the merged configuration."`
	Path configPathCmd `cmd:"" help:"Print the configuration file path."`
}

type (
	configShowCmd struct{}
	configPathCmd struct{}
)

func (c *configShowCmd) Run(rc *runContext) error {
	pretty, err := json.MarshalIndent(maskedCopy(rc.cfg), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	fmt.Println(string(pretty))
	return nil
}

func (c *configPathCmd) Run(rc *runContext) error {
	path, err := paths.ConfigPath()
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println("No gohands.toml found.")
		fmt.Println()
		fmt.Println("Locations searched:")
		fmt.Println("  ./gohands.toml")
		fmt.Println("  ~/.gohands/gohands.toml")
		return nil
	}
	fmt.Println(path)
	return nil
}

type versionCmd struct{}

func (c *versionCmd) Run(rc *runContext) error {
	fmt.Printf("gohands %s\n", version)
	return nil
}

// maskedCopy returns a display copy of the config with secrets masked.
func maskedCopy(cfg *config.Config) *config.Config {
	cp := *cfg
	cp.LLMs = make(map[string]config.LLMConfig, len(cfg.LLMs))
	for name, llm := range cfg.LLMs {
		if llm.APIKey.IsSet() {
			llm.APIKey = config.Masked
		}
		cp.LLMs[name] = llm
	}
	if cp.SearchAPIKey.IsSet() {
		cp.SearchAPIKey = config.Masked
	}
	return &cp
}

// applyStored folds the persisted settings record into the live config.
// The record wins for everything the settings flows edit.
func applyStored(cfg *config.Config, store settings.Store) {
	st, err := store.Load()
	if err != nil {
		L_warn("failed to load stored settings", "error", err)
		return
	}
	if st == nil {
		return
	}

	if st.LLMModel != "" {
		llm := cfg.GetLLMConfig("")
		llm.Model = st.LLMModel
		llm.BaseURL = st.LLMBaseURL
		if st.LLMAPIKey.IsSet() {
			llm.APIKey = st.LLMAPIKey
		}
		cfg.SetLLMConfig(llm, "")
	}

	if st.Agent != "" {
		cfg.DefaultAgent = st.Agent
	}
	cfg.Security.ConfirmationMode = st.ConfirmationMode
	cfg.EnableDefaultCondenser = st.EnableDefaultCondenser
	if st.SearchAPIKey.IsSet() {
		cfg.SearchAPIKey = st.SearchAPIKey
	}

	L_debug("applied stored settings", "install_id", st.InstallID)
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("gohands"),
		kong.Description("Interactive settings and configuration for gohands."),
		kong.UsageOnError(),
	)

	level := LevelInfo
	if c.Debug {
		level = LevelDebug
	}
	Init(&Config{Level: level})

	cfg, err := config.Load()
	ctx.FatalIfErrorf(err)

	store, err := settings.DefaultFileStore(cfg)
	ctx.FatalIfErrorf(err)

	applyStored(cfg, store)

	rc := &runContext{
		cfg:   cfg,
		store: store,
		flows: setup.NewFlows(cfg, store),
	}
	ctx.FatalIfErrorf(ctx.Run(rc))
}
