package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/aashari/go-openai-text-api/internal/httpclient"
)

// ErrMissingAPIKey is returned by NewOpenAIProvider without credentials
var ErrMissingAPIKey = errors.New("OpenAI API key is not configured")

// OpenAIProvider adapts the official OpenAI client to Provider
type OpenAIProvider struct {
	client openai.Client
}

// NewOpenAIProvider builds the client once. Timeout and retries are handled
// by the client for every call.
func NewOpenAIProvider(opts ClientOptions) (*OpenAIProvider, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	requestOptions := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(opts.MaxRetries),
		option.WithHTTPClient(httpclient.New(httpclient.Options{})),
	}
	if opts.Organization != "" {
		requestOptions = append(requestOptions, option.WithOrganization(opts.Organization))
	}
	if opts.BaseURL != "" {
		requestOptions = append(requestOptions, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		requestOptions = append(requestOptions, option.WithRequestTimeout(opts.Timeout))
	}

	return &OpenAIProvider{client: openai.NewClient(requestOptions...)}, nil
}

// CreateChatCompletion sends all six parameters with the composed turns
func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (*Completion, error) {
	messages, err := toOpenAIMessages(req.Messages)
	if err != nil {
		return nil, err
	}

	params := openai.ChatCompletionNewParams{
		Messages:         messages,
		Model:            openai.ChatModel(req.Parameters.Model),
		Temperature:      openai.Float(req.Parameters.Temperature),
		MaxTokens:        openai.Int(int64(req.Parameters.MaxTokens)),
		TopP:             openai.Float(req.Parameters.TopP),
		FrequencyPenalty: openai.Float(req.Parameters.FrequencyPenalty),
		PresencePenalty:  openai.Float(req.Parameters.PresencePenalty),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}
	return fromOpenAICompletion(resp), nil
}

// ListModels returns the identifiers of the models available to the key
func (p *OpenAIProvider) ListModels(ctx context.Context) ([]string, error) {
	page, err := p.client.Models.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(page.Data))
	for _, model := range page.Data {
		ids = append(ids, model.ID)
	}
	return ids, nil
}

func toOpenAIMessages(messages []Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for i, m := range messages {
		switch m.Role {
		case RoleSystem:
			msg := &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{OfString: openai.String(m.Content)},
			}
			if m.Name != "" {
				msg.Name = openai.String(m.Name)
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{OfSystem: msg})
		case RoleUser:
			msg := &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{OfString: openai.String(m.Content)},
			}
			if m.Name != "" {
				msg.Name = openai.String(m.Name)
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{OfUser: msg})
		case RoleAssistant:
			msg := &openai.ChatCompletionAssistantMessageParam{
				Content: openai.ChatCompletionAssistantMessageParamContentUnion{OfString: openai.String(m.Content)},
			}
			if m.Name != "" {
				msg.Name = openai.String(m.Name)
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{OfAssistant: msg})
		case RoleFunction:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfFunction: &openai.ChatCompletionFunctionMessageParam{
					Name:    m.Name,
					Content: openai.String(m.Content),
				},
			})
		default:
			return nil, invalidInput(fmt.Sprintf("messages[%d].role", i), fmt.Sprintf("%q is not supported", m.Role))
		}
	}
	return out, nil
}

func fromOpenAICompletion(resp *openai.ChatCompletion) *Completion {
	completion := &Completion{
		ID:    resp.ID,
		Model: resp.Model,
		Usage: Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
		Choices: make([]Choice, 0, len(resp.Choices)),
	}
	for _, choice := range resp.Choices {
		completion.Choices = append(completion.Choices, Choice{
			Index:        int(choice.Index),
			Content:      choice.Message.Content,
			FinishReason: string(choice.FinishReason),
		})
	}
	return completion
}
