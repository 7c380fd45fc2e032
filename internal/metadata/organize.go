package metadata

import (
	"sort"
	"strings"
)

// FirstPartyProvider is the hosted first-party provider. It gets a fixed
// model menu instead of the free-form model prompt.
const FirstPartyProvider = "gohands"

// Verified providers, in preference order. These surface first in the
// provider selection.
var VerifiedProviders = []string{FirstPartyProvider, "anthropic", "openai", "mistral"}

// Verified model lists per provider. First entry is the recommended
// default for that provider.
var (
	VerifiedAnthropicModels = []string{
		"claude-sonnet-4-20250514",
		"claude-opus-4-20250514",
		"claude-3-7-sonnet-20250219",
		"claude-3-5-sonnet-20241022",
		"claude-3-5-haiku-20241022",
	}
	VerifiedOpenAIModels = []string{
		"gpt-4o",
		"gpt-4.1",
		"o3",
		"o4-mini",
		"gpt-4o-mini",
	}
	VerifiedMistralModels = []string{
		"devstral-small-2505",
	}
	VerifiedGohandsModels = []string{
		"claude-sonnet-4-20250514",
		"gpt-4o",
		"o3",
		"o4-mini",
		"devstral-small-2505",
	}
)

// VerifiedModels returns the verified model list for a provider, or nil.
func VerifiedModels(provider string) []string {
	switch provider {
	case "anthropic":
		return VerifiedAnthropicModels
	case "openai":
		return VerifiedOpenAIModels
	case "mistral":
		return VerifiedMistralModels
	case "gohands":
		return VerifiedGohandsModels
	default:
		return nil
	}
}

// ProviderModels groups the models of one provider together with the
// separator needed to rebuild a full model id (provider + sep + model).
type ProviderModels struct {
	Separator string
	Models    []string
}

// dotProviders are prefixes that mark bedrock-style dotted model ids
// ("anthropic.claude-..."), where the provider is joined with ".".
var dotProviders = map[string]bool{
	"anthropic": true,
	"amazon":    true,
	"meta":      true,
	"mistral":   true,
	"cohere":    true,
	"ai21":      true,
}

// SplitModelID splits a full model id into provider, bare model name and
// the separator joining them. Ids with no recognizable provider prefix
// group under "other" with an empty separator.
func SplitModelID(id string) (provider, model, sep string) {
	if i := strings.Index(id, "/"); i >= 0 {
		return id[:i], id[i+1:], "/"
	}
	if i := strings.Index(id, "."); i >= 0 && dotProviders[id[:i]] {
		return id[:i], id[i+1:], "."
	}
	return "other", id, ""
}

// OrganizeModelsByProvider groups full model ids by provider. Model
// order within a provider follows the input order, so a deterministic
// input yields a deterministic grouping.
func OrganizeModelsByProvider(ids []string) map[string]ProviderModels {
	out := make(map[string]ProviderModels)
	for _, id := range ids {
		provider, model, sep := SplitModelID(id)
		pm := out[provider]
		if pm.Separator == "" {
			pm.Separator = sep
		}
		pm.Models = append(pm.Models, model)
		out[provider] = pm
	}
	return out
}

// ProviderKeys returns the providers of an organized grouping with the
// verified providers first (in their preference order) and the rest
// sorted alphabetically.
func ProviderKeys(organized map[string]ProviderModels) []string {
	seen := make(map[string]bool, len(organized))
	var keys []string

	for _, p := range VerifiedProviders {
		if _, ok := organized[p]; ok {
			keys = append(keys, p)
			seen[p] = true
		}
	}

	var rest []string
	for p := range organized {
		if !seen[p] {
			rest = append(rest, p)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// PrioritizeVerified puts the provider's verified models first (in
// verified order) and appends the remaining models without duplicates.
// Providers without a verified list get their models back unchanged.
func PrioritizeVerified(provider string, models []string) []string {
	verified := VerifiedModels(provider)
	if len(verified) == 0 {
		return models
	}

	inVerified := make(map[string]bool, len(verified))
	for _, m := range verified {
		inVerified[m] = true
	}

	out := make([]string, 0, len(verified)+len(models))
	out = append(out, verified...)
	for _, m := range models {
		if !inVerified[m] {
			out = append(out, m)
		}
	}
	return out
}

// DefaultModelFor returns the recommended model for a provider: the first
// verified model when there is one, otherwise the provider's first
// catalog model.
func DefaultModelFor(provider string, organized map[string]ProviderModels) string {
	if verified := VerifiedModels(provider); len(verified) > 0 {
		return verified[0]
	}
	if pm, ok := organized[provider]; ok && len(pm.Models) > 0 {
		return pm.Models[0]
	}
	return ""
}
