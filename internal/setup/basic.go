package setup

import (
	"fmt"

	"github.com/gohands/gohands/internal/config"
	"github.com/gohands/gohands/internal/metadata"
	"github.com/gohands/gohands/internal/settings"
)

// otherProvider is the sentinel value of the "Select another provider"
// menu entry.
const otherProvider = "__other__"

// BasicLLM runs the guided three step LLM setup: provider, model, API
// key. Nothing is written until the user confirms the save.
func (f *Flows) BasicLLM() error {
	organized := metadata.OrganizeModelsByProvider(metadata.SupportedModels())
	providers := metadata.ProviderKeys(organized)

	provider, err := f.chooseProvider(organized, providers)
	if err != nil {
		return abort(err)
	}

	model, err := f.chooseModel(provider, organized)
	if err != nil {
		return abort(err)
	}

	apiKey, err := f.prompt.Input(InputOpts{
		Title:    "(Step 3/3) Enter API Key:",
		Secret:   true,
		Validate: nonEmpty("API key"),
	})
	if err != nil {
		return abort(err)
	}

	f.checkCredentials(provider, apiKey, "")

	ok, err := f.confirmSave()
	if err != nil {
		return abort(err)
	}
	if !ok {
		fmt.Println("Settings discarded.")
		return nil
	}

	fullModel := provider + organized[provider].Separator + model

	llm := f.cfg.GetLLMConfig("")
	llm.Model = fullModel
	llm.APIKey = config.Secret(apiKey)
	llm.BaseURL = ""
	f.cfg.SetLLMConfig(llm, "")

	f.cfg.DefaultAgent = config.DefaultAgent
	f.cfg.EnableDefaultCondenser = true

	ac := f.cfg.GetAgentConfig(f.cfg.DefaultAgent)
	ac.Condenser = config.LLMSummarizingCondenser(config.DefaultLLMProfile)
	f.cfg.SetAgentConfig(ac, f.cfg.DefaultAgent)

	return f.persist(func(st *settings.Settings) {
		st.LLMModel = fullModel
		st.LLMAPIKey = config.Secret(apiKey)
		st.LLMBaseURL = ""
		st.Agent = config.DefaultAgent
		st.EnableDefaultCondenser = true
	})
}

// chooseProvider shows the verified providers as a menu, with an escape
// hatch into a completing prompt over every catalog provider.
func (f *Flows) chooseProvider(organized map[string]metadata.ProviderModels, providers []string) (string, error) {
	var options []Option
	for _, p := range metadata.VerifiedProviders {
		if _, ok := organized[p]; !ok {
			continue
		}
		label := p
		if name, ok := metadata.Get().ProviderName(p); ok {
			label = name
		}
		options = append(options, Option{Label: label, Value: p})
	}
	options = append(options, Option{Label: "Select another provider", Value: otherProvider})

	choice, err := f.prompt.Select("(Step 1/3) Select LLM Provider:", options)
	if err != nil {
		return "", err
	}
	if choice != otherProvider {
		return choice, nil
	}

	return f.prompt.Input(InputOpts{
		Title:       "(Step 1/3) Select LLM Provider (TAB to complete):",
		Suggestions: providers,
		Validate:    oneOf("provider", providers),
	})
}

// chooseModel picks the bare model name for a provider. Verified
// providers offer their recommended model up front; the first-party
// provider has a fixed menu.
func (f *Flows) chooseModel(provider string, organized map[string]metadata.ProviderModels) (string, error) {
	models := metadata.PrioritizeVerified(provider, organized[provider].Models)

	if provider == metadata.FirstPartyProvider {
		options := make([]Option, 0, len(metadata.VerifiedGohandsModels))
		for _, m := range metadata.VerifiedGohandsModels {
			options = append(options, Option{Label: m, Value: m})
		}
		return f.prompt.Select("(Step 2/3) Select Model:", options)
	}

	if recommended := metadata.DefaultModelFor(provider, organized); recommended != "" {
		choice, err := f.prompt.Select(
			fmt.Sprintf("(Step 2/3) Use the recommended model %s?", recommended),
			[]Option{
				{Label: fmt.Sprintf("Use %s", recommended), Value: "recommended"},
				{Label: "Select another model", Value: "custom"},
			})
		if err != nil {
			return "", err
		}
		if choice == "recommended" {
			return recommended, nil
		}
	}

	model, err := f.prompt.Input(InputOpts{
		Title:       "(Step 2/3) Select Model (TAB to complete):",
		Suggestions: models,
		Validate:    nonEmpty("model"),
	})
	if err != nil {
		return "", err
	}

	if oneOf("model", models)(model) != nil {
		fmt.Printf("⚠ %s is not in the %s catalog, continuing anyway\n", model, provider)
	}
	return model, nil
}
