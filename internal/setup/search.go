package setup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gohands/gohands/internal/config"
	"github.com/gohands/gohands/internal/settings"
)

// SearchAPI manages the Tavily search API key: set, remove or keep.
func (f *Flows) SearchAPI() error {
	fmt.Println()
	fmt.Println("Search API integration (Tavily) lets the agent search the web.")
	fmt.Println("Get a key at https://tavily.com - keys start with tvly-")
	fmt.Println()

	if f.cfg.SearchAPIKey.IsSet() {
		fmt.Println("A search API key is currently configured.")
	} else {
		fmt.Println("No search API key is configured.")
	}

	choice, err := f.prompt.Select("What would you like to do?", []Option{
		{Label: "Set or update the search API key", Value: "set"},
		{Label: "Remove the search API key", Value: "remove"},
		{Label: "Keep current setting", Value: "keep"},
	})
	if err != nil {
		return abort(err)
	}
	if choice == "keep" {
		return nil
	}

	var key string
	if choice == "set" {
		key, err = f.prompt.Input(InputOpts{
			Title:    "Enter Search API Key:",
			Secret:   true,
			Validate: tavilyKey,
		})
		if err != nil {
			return abort(err)
		}
	}

	ok, err := f.confirmSave()
	if err != nil {
		return abort(err)
	}
	if !ok {
		fmt.Println("Settings discarded.")
		return nil
	}

	f.cfg.SearchAPIKey = config.Secret(key)

	return f.persist(func(st *settings.Settings) {
		st.SearchAPIKey = config.Secret(key)
	})
}

// tavilyKey validates the Tavily key format.
func tavilyKey(s string) error {
	if !strings.HasPrefix(strings.TrimSpace(s), "tvly-") {
		return errors.New(`search API keys start with "tvly-"`)
	}
	return nil
}
