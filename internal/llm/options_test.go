package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveParametersFallbacks(t *testing.T) {
	params := ResolveParameters(nil, nil)

	assert.Equal(t, Parameters{
		Model:            "gpt-3.5-turbo",
		Temperature:      0.7,
		MaxTokens:        1000,
		TopP:             1,
		FrequencyPenalty: 0,
		PresencePenalty:  0,
	}, params)
}

func TestResolveParametersPrecedence(t *testing.T) {
	defaults := &GenerationOptions{
		Model:       "gpt-4o-mini",
		Temperature: Float(0.2),
		MaxTokens:   Int(256),
	}

	tests := []struct {
		name      string
		overrides *GenerationOptions
		expected  Parameters
	}{
		{
			name:      "defaults over fallbacks",
			overrides: nil,
			expected:  Parameters{Model: "gpt-4o-mini", Temperature: 0.2, MaxTokens: 256, TopP: 1},
		},
		{
			name:      "empty overrides keep defaults",
			overrides: &GenerationOptions{},
			expected:  Parameters{Model: "gpt-4o-mini", Temperature: 0.2, MaxTokens: 256, TopP: 1},
		},
		{
			name: "overrides over defaults",
			overrides: &GenerationOptions{
				Model:            "gpt-4o",
				Temperature:      Float(0.9),
				MaxTokens:        Int(10),
				TopP:             Float(0.5),
				FrequencyPenalty: Float(1.5),
				PresencePenalty:  Float(-1),
			},
			expected: Parameters{
				Model:            "gpt-4o",
				Temperature:      0.9,
				MaxTokens:        10,
				TopP:             0.5,
				FrequencyPenalty: 1.5,
				PresencePenalty:  -1,
			},
		},
		{
			name:      "explicit zero override is kept",
			overrides: &GenerationOptions{Temperature: Float(0)},
			expected:  Parameters{Model: "gpt-4o-mini", Temperature: 0, MaxTokens: 256, TopP: 1},
		},
		{
			name:      "fields resolve independently",
			overrides: &GenerationOptions{TopP: Float(0.1)},
			expected:  Parameters{Model: "gpt-4o-mini", Temperature: 0.2, MaxTokens: 256, TopP: 0.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveParameters(tt.overrides, defaults))
		})
	}
}

func TestResolveParametersDoesNotMutateInputs(t *testing.T) {
	overrides := &GenerationOptions{Temperature: Float(0.4)}
	defaults := &GenerationOptions{Model: "gpt-4o"}

	ResolveParameters(overrides, defaults)

	assert.Empty(t, overrides.Model)
	assert.Nil(t, defaults.Temperature)
	assert.Equal(t, 0.4, *overrides.Temperature)
}

func TestResolveParametersBlankModelIsAbsent(t *testing.T) {
	params := ResolveParameters(&GenerationOptions{Model: "   "}, &GenerationOptions{Model: "gpt-4o-mini"})
	assert.Equal(t, "gpt-4o-mini", params.Model)

	params = ResolveParameters(&GenerationOptions{Model: "\t"}, &GenerationOptions{Model: " "})
	assert.Equal(t, FallbackModel, params.Model)
}
