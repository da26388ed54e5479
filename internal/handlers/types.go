package handlers

import "github.com/aashari/go-openai-text-api/internal/llm"

// GenerationOverrides are the optional per-request tunables. Absent fields
// fall back to the service defaults.
type GenerationOverrides struct {
	Model            string   `json:"model,omitempty" validate:"omitempty,notblank" example:"gpt-4o-mini"`
	Temperature      *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=1" example:"0.7"`
	MaxTokens        *int     `json:"maxTokens,omitempty" validate:"omitempty,gte=1" example:"150"`
	TopP             *float64 `json:"topP,omitempty" validate:"omitempty,gte=0,lte=1" example:"1"`
	FrequencyPenalty *float64 `json:"frequencyPenalty,omitempty" validate:"omitempty,gte=-2,lte=2" example:"0"`
	PresencePenalty  *float64 `json:"presencePenalty,omitempty" validate:"omitempty,gte=-2,lte=2" example:"0"`
}

func (o GenerationOverrides) options() *llm.GenerationOptions {
	return &llm.GenerationOptions{
		Model:            o.Model,
		Temperature:      o.Temperature,
		MaxTokens:        o.MaxTokens,
		TopP:             o.TopP,
		FrequencyPenalty: o.FrequencyPenalty,
		PresencePenalty:  o.PresencePenalty,
	}
}

// MessageDTO is one conversation turn on the wire
type MessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant function" example:"user"`
	Content string `json:"content" validate:"notblank" example:"Hello!"`
	Name    string `json:"name,omitempty" validate:"required_if=Role function"`
}

// GenerateTextRequest is the body of POST /openai/generate-text
type GenerateTextRequest struct {
	Prompt string `json:"prompt" validate:"notblank" example:"Write a short poem about artificial intelligence"`
	GenerationOverrides
}

// ChatCompletionRequest is the body of POST /openai/chat-completion
type ChatCompletionRequest struct {
	Messages []MessageDTO `json:"messages" validate:"required,min=1,dive"`
	GenerationOverrides
}

// SystemPromptRequest is the body of POST /openai/system-prompt
type SystemPromptRequest struct {
	SystemPrompt string `json:"systemPrompt" validate:"notblank" example:"You are a concise marketing expert"`
	UserPrompt   string `json:"userPrompt" validate:"notblank" example:"How can I increase social media engagement?"`
	GenerationOverrides
}

// ContinueConversationRequest is the body of POST /openai/continue-conversation
type ContinueConversationRequest struct {
	Conversation []MessageDTO `json:"conversation" validate:"omitempty,dive"`
	NewMessage   string       `json:"newMessage" validate:"notblank" example:"And what about Go?"`
	GenerationOverrides
}

// ResultResponse carries the generated text
type ResultResponse struct {
	Result string `json:"result" example:"Silicon dreams in quiet code..."`
}

// ModelsResponse lists model identifiers
type ModelsResponse struct {
	Models []string `json:"models"`
}

// Example is one sample request
type Example struct {
	Title    string                 `json:"title"`
	Endpoint string                 `json:"endpoint"`
	Payload  map[string]interface{} `json:"payload"`
}

// ExamplesResponse is the body of GET /openai/examples
type ExamplesResponse struct {
	Examples []Example `json:"examples"`
}

func toMessages(dtos []MessageDTO) []llm.Message {
	messages := make([]llm.Message, 0, len(dtos))
	for _, m := range dtos {
		messages = append(messages, llm.Message{
			Role:    llm.Role(m.Role),
			Content: m.Content,
			Name:    m.Name,
		})
	}
	return messages
}

var examplePayloads = []Example{
	{
		Title:    "Simple text generation",
		Endpoint: "/openai/generate-text",
		Payload: map[string]interface{}{
			"prompt":      "Write a short poem about artificial intelligence",
			"temperature": 0.7,
			"maxTokens":   150,
		},
	},
	{
		Title:    "Chat conversation",
		Endpoint: "/openai/chat-completion",
		Payload: map[string]interface{}{
			"messages": []map[string]string{
				{"role": "system", "content": "You are an expert programming assistant"},
				{"role": "user", "content": "Can you explain what Go channels are and when to use them?"},
			},
			"temperature": 0.5,
		},
	},
	{
		Title:    "System prompt",
		Endpoint: "/openai/system-prompt",
		Payload: map[string]interface{}{
			"systemPrompt": "You are a digital marketing expert who gives concise, practical advice",
			"userPrompt":   "What are the best strategies to increase social media engagement?",
			"temperature":  0.6,
			"maxTokens":    300,
		},
	},
	{
		Title:    "Continue a conversation",
		Endpoint: "/openai/continue-conversation",
		Payload: map[string]interface{}{
			"conversation": []map[string]string{
				{"role": "user", "content": "Recommend a book about distributed systems"},
				{"role": "assistant", "content": "Designing Data-Intensive Applications by Martin Kleppmann."},
			},
			"newMessage": "Which chapters should I read first?",
		},
	},
}
