package llm

import "time"

// Role identifies the author of a conversation turn
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleFunction  Role = "function"
)

// Valid reports whether r is one of the supported roles
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleFunction:
		return true
	}
	return false
}

// Message is one conversation turn
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// GenerationOptions carries optional tunables. A nil pointer or an empty
// model means the field is absent. Per-call overrides and service defaults
// share this shape.
type GenerationOptions struct {
	Model            string
	Temperature      *float64
	MaxTokens        *int
	TopP             *float64
	FrequencyPenalty *float64
	PresencePenalty  *float64
}

// Parameters are the fully resolved call parameters sent to the provider
type Parameters struct {
	Model            string  `json:"model" bson:"model"`
	Temperature      float64 `json:"temperature" bson:"temperature"`
	MaxTokens        int     `json:"max_tokens" bson:"max_tokens"`
	TopP             float64 `json:"top_p" bson:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty" bson:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty" bson:"presence_penalty"`
}

// ClientOptions configures the provider client once at construction
type ClientOptions struct {
	APIKey       string
	Organization string
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
}

// ChatCompletionOptions is the input of Service.CreateChatCompletion
type ChatCompletionOptions struct {
	Messages []Message
	Options  *GenerationOptions
}

// SystemPromptOptions is the input of Service.GenerateWithSystemPrompt
type SystemPromptOptions struct {
	SystemPrompt string
	UserPrompt   string
	Options      *GenerationOptions
}

// ConversationOptions is the input of Service.ContinueConversation
type ConversationOptions struct {
	Conversation []Message
	NewMessage   string
	Options      *GenerationOptions
}

// ChatCompletionRequest is a single provider call
type ChatCompletionRequest struct {
	Messages   []Message
	Parameters Parameters
}

// Completion is the provider-neutral view of a chat completion response
type Completion struct {
	ID      string
	Model   string
	Choices []Choice
	Usage   Usage
}

// Choice is one generated alternative
type Choice struct {
	Index        int
	Content      string
	FinishReason string
}

// Usage reports token accounting for one call
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v
func Int(v int) *int {
	return &v
}
