package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSinglePrompt(t *testing.T) {
	messages, err := Compose(SinglePrompt{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "hello"}}, messages)
}

func TestComposeSystemGuided(t *testing.T) {
	messages, err := Compose(SystemGuided{System: "be terse", User: "2+2?"})
	require.NoError(t, err)
	assert.Equal(t, []Message{
		{Role: RoleSystem, Content: "be terse"},
		{Role: RoleUser, Content: "2+2?"},
	}, messages)
}

func TestComposeMultiTurn(t *testing.T) {
	prior := []Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}

	messages, err := Compose(MultiTurn{Prior: prior, Text: "bye"})
	require.NoError(t, err)
	assert.Equal(t, []Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
		{Role: RoleUser, Content: "bye"},
	}, messages)

	t.Run("prior turns are not aliased", func(t *testing.T) {
		messages[0].Content = "changed"
		assert.Equal(t, "hi", prior[0].Content)
	})

	t.Run("empty prior is a fresh conversation", func(t *testing.T) {
		messages, err := Compose(MultiTurn{Text: "start"})
		require.NoError(t, err)
		assert.Equal(t, []Message{{Role: RoleUser, Content: "start"}}, messages)
	})
}

func TestComposeTranscript(t *testing.T) {
	turns := []Message{
		{Role: RoleSystem, Content: "You are helpful."},
		{Role: RoleUser, Content: "What is the weather?"},
		{Role: RoleFunction, Name: "get_weather", Content: `{"temp": 21}`},
	}

	messages, err := Compose(Transcript{Messages: turns})
	require.NoError(t, err)
	assert.Equal(t, turns, messages)

	messages[1].Content = "changed"
	assert.Equal(t, "What is the weather?", turns[1].Content)
}

func TestComposeIsIdempotent(t *testing.T) {
	prompts := []Prompt{
		SinglePrompt{Text: "hello"},
		SystemGuided{System: "be terse", User: "2+2?"},
		MultiTurn{Prior: []Message{{Role: RoleUser, Content: "hi"}}, Text: "bye"},
		Transcript{Messages: []Message{{Role: RoleUser, Content: "hi"}}},
	}

	for _, p := range prompts {
		first, err := Compose(p)
		require.NoError(t, err)
		second, err := Compose(p)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestComposeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input Prompt
		field string
	}{
		{"nil prompt", nil, "prompt"},
		{"blank prompt", SinglePrompt{Text: "   "}, "prompt"},
		{"blank system prompt", SystemGuided{System: "\n", User: "hi"}, "systemPrompt"},
		{"blank user prompt", SystemGuided{System: "be terse", User: ""}, "userPrompt"},
		{"blank new message", MultiTurn{Text: " \t"}, "newMessage"},
		{
			"blank prior content",
			MultiTurn{Prior: []Message{{Role: RoleUser, Content: " "}}, Text: "bye"},
			"conversation[0].content",
		},
		{
			"unknown prior role",
			MultiTurn{Prior: []Message{{Role: "robot", Content: "beep"}}, Text: "bye"},
			"conversation[0].role",
		},
		{"empty transcript", Transcript{}, "messages"},
		{
			"function turn without name",
			Transcript{Messages: []Message{{Role: RoleFunction, Content: "{}"}}},
			"messages[0].name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, err := Compose(tt.input)
			require.Error(t, err)
			assert.Nil(t, messages)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}
