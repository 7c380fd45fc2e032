package setup

import (
	"fmt"

	"github.com/gohands/gohands/internal/agent"
	"github.com/gohands/gohands/internal/config"
	"github.com/gohands/gohands/internal/settings"
)

var enableDisable = []Option{
	{Label: "Enable", Value: "enable"},
	{Label: "Disable", Value: "disable"},
}

// AdvancedLLM runs the six step expert flow: custom model id, base URL,
// API key, agent, confirmation mode and memory condensation. Like the
// basic flow, nothing is written until the save confirmation.
func (f *Flows) AdvancedLLM() error {
	model, err := f.prompt.Input(InputOpts{
		Title:       "(Step 1/6) Custom Model:",
		Description: "Full model id, e.g. anthropic/claude-sonnet-4-20250514",
		Validate:    nonEmpty("model"),
	})
	if err != nil {
		return abort(err)
	}

	baseURL, err := f.prompt.Input(InputOpts{
		Title:       "(Step 2/6) Base URL:",
		Placeholder: "https://api.example.com/v1",
		Validate:    nonEmpty("base URL"),
	})
	if err != nil {
		return abort(err)
	}

	apiKey, err := f.prompt.Input(InputOpts{
		Title:    "(Step 3/6) Enter API Key:",
		Secret:   true,
		Validate: nonEmpty("API key"),
	})
	if err != nil {
		return abort(err)
	}

	agents := agent.ListAgents()
	agentName, err := f.prompt.Input(InputOpts{
		Title:       "(Step 4/6) Agent (TAB to complete):",
		Suggestions: agents,
		Validate:    oneOf("agent", agents),
	})
	if err != nil {
		return abort(err)
	}

	confirmChoice, err := f.prompt.Select("(Step 5/6) Confirmation Mode:", enableDisable)
	if err != nil {
		return abort(err)
	}
	confirmationMode := confirmChoice == "enable"

	condenseChoice, err := f.prompt.Select("(Step 6/6) Memory Condensation:", enableDisable)
	if err != nil {
		return abort(err)
	}
	condensation := condenseChoice == "enable"

	f.checkCredentials("", apiKey, baseURL)

	ok, err := f.confirmSave()
	if err != nil {
		return abort(err)
	}
	if !ok {
		fmt.Println("Settings discarded.")
		return nil
	}

	llm := f.cfg.GetLLMConfig("")
	llm.Model = model
	llm.BaseURL = baseURL
	llm.APIKey = config.Secret(apiKey)
	f.cfg.SetLLMConfig(llm, "")

	f.cfg.DefaultAgent = agentName
	f.cfg.Security.ConfirmationMode = confirmationMode
	f.cfg.EnableDefaultCondenser = condensation

	ac := f.cfg.GetAgentConfig(agentName)
	ac.Condenser = advancedCondenser(condensation)
	f.cfg.SetAgentConfig(ac, agentName)

	return f.persist(func(st *settings.Settings) {
		st.LLMModel = model
		st.LLMBaseURL = baseURL
		st.LLMAPIKey = config.Secret(apiKey)
		st.Agent = agentName
		st.ConfirmationMode = confirmationMode
		st.EnableDefaultCondenser = condensation
	})
}

// advancedCondenser builds the agent condenser for the advanced flow.
// With condensation on, a conversation window feeds an LLM summarizer
// that keeps the first events and caps history size; off keeps just the
// window.
func advancedCondenser(condensation bool) config.CondenserConfig {
	window := config.ConversationWindowCondenser()
	if !condensation {
		return window
	}

	summarizer := config.LLMSummarizingCondenser(config.DefaultLLMProfile)
	summarizer.KeepFirst = 4
	summarizer.MaxSize = 120
	return config.PipelineCondenser(window, summarizer)
}
