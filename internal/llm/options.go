package llm

import "strings"

// Fixed fallbacks used when neither the call nor the service supplies a value
const (
	FallbackModel            = "gpt-3.5-turbo"
	FallbackTemperature      = 0.7
	FallbackMaxTokens        = 1000
	FallbackTopP             = 1.0
	FallbackFrequencyPenalty = 0.0
	FallbackPresencePenalty  = 0.0
)

// ResolveParameters merges per-call overrides over service defaults over the
// fixed fallbacks, field by field. Either argument may be nil. Range checks
// belong to the caller.
func ResolveParameters(overrides, defaults *GenerationOptions) Parameters {
	if overrides == nil {
		overrides = &GenerationOptions{}
	}
	if defaults == nil {
		defaults = &GenerationOptions{}
	}

	return Parameters{
		Model:            firstString(overrides.Model, defaults.Model, FallbackModel),
		Temperature:      firstFloat(overrides.Temperature, defaults.Temperature, FallbackTemperature),
		MaxTokens:        firstInt(overrides.MaxTokens, defaults.MaxTokens, FallbackMaxTokens),
		TopP:             firstFloat(overrides.TopP, defaults.TopP, FallbackTopP),
		FrequencyPenalty: firstFloat(overrides.FrequencyPenalty, defaults.FrequencyPenalty, FallbackFrequencyPenalty),
		PresencePenalty:  firstFloat(overrides.PresencePenalty, defaults.PresencePenalty, FallbackPresencePenalty),
	}
}

// firstString treats whitespace-only values as absent
func firstString(override, def, fallback string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	if strings.TrimSpace(def) != "" {
		return def
	}
	return fallback
}

func firstFloat(override, def *float64, fallback float64) float64 {
	if override != nil {
		return *override
	}
	if def != nil {
		return *def
	}
	return fallback
}

func firstInt(override, def *int, fallback int) int {
	if override != nil {
		return *override
	}
	if def != nil {
		return *def
	}
	return fallback
}
