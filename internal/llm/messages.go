package llm

import (
	"fmt"
	"strings"
)

// Prompt is a usage pattern that composes into an ordered list of turns.
// Implementations are SinglePrompt, SystemGuided, MultiTurn and Transcript.
type Prompt interface {
	Compose() ([]Message, error)
}

// SinglePrompt is a lone user prompt
type SinglePrompt struct {
	Text string
}

// SystemGuided pairs a system instruction with a user prompt
type SystemGuided struct {
	System string
	User   string
}

// MultiTurn appends a new user prompt to prior turns
type MultiTurn struct {
	Prior []Message
	Text  string
}

// Transcript is an explicit list of turns sent as given
type Transcript struct {
	Messages []Message
}

// Compose returns [{user, Text}]
func (p SinglePrompt) Compose() ([]Message, error) {
	if isBlank(p.Text) {
		return nil, invalidInput("prompt", "must not be empty")
	}
	return []Message{{Role: RoleUser, Content: p.Text}}, nil
}

// Compose returns [{system, System}, {user, User}]
func (p SystemGuided) Compose() ([]Message, error) {
	if isBlank(p.System) {
		return nil, invalidInput("systemPrompt", "must not be empty")
	}
	if isBlank(p.User) {
		return nil, invalidInput("userPrompt", "must not be empty")
	}
	return []Message{
		{Role: RoleSystem, Content: p.System},
		{Role: RoleUser, Content: p.User},
	}, nil
}

// Compose returns a copy of Prior followed by {user, Text}
func (p MultiTurn) Compose() ([]Message, error) {
	if err := validateTurns("conversation", p.Prior, true); err != nil {
		return nil, err
	}
	if isBlank(p.Text) {
		return nil, invalidInput("newMessage", "must not be empty")
	}
	messages := make([]Message, 0, len(p.Prior)+1)
	messages = append(messages, p.Prior...)
	return append(messages, Message{Role: RoleUser, Content: p.Text}), nil
}

// Compose returns a copy of Messages
func (p Transcript) Compose() ([]Message, error) {
	if err := validateTurns("messages", p.Messages, false); err != nil {
		return nil, err
	}
	messages := make([]Message, len(p.Messages))
	copy(messages, p.Messages)
	return messages, nil
}

// Compose builds the turns for any usage pattern
func Compose(p Prompt) ([]Message, error) {
	if p == nil {
		return nil, invalidInput("prompt", "is required")
	}
	return p.Compose()
}

func validateTurns(field string, turns []Message, allowEmpty bool) error {
	if len(turns) == 0 && !allowEmpty {
		return invalidInput(field, "must contain at least one message")
	}
	for i, turn := range turns {
		name := fmt.Sprintf("%s[%d]", field, i)
		if !turn.Role.Valid() {
			return invalidInput(name+".role", fmt.Sprintf("%q is not one of system, user, assistant, function", turn.Role))
		}
		if isBlank(turn.Content) {
			return invalidInput(name+".content", "must not be empty")
		}
		if turn.Role == RoleFunction && isBlank(turn.Name) {
			return invalidInput(name+".name", "is required for function messages")
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
