package llm

import (
	"context"
	"time"

	"github.com/aashari/go-openai-text-api/internal/logger"
)

// Operation names reported in logs and usage records
const (
	OperationChatCompletion       = "CreateChatCompletion"
	OperationGenerateText         = "GenerateText"
	OperationSystemPrompt         = "GenerateWithSystemPrompt"
	OperationContinueConversation = "ContinueConversation"
	OperationListModels           = "AvailableModels"
)

// Service turns usage patterns into a single provider call each.
// It holds only read-only configuration and is safe for concurrent use.
type Service struct {
	provider  Provider
	defaults  GenerationOptions
	recorders []UsageRecorder
	now       func() time.Time
}

// NewService wires a provider with the service-level defaults. A nil
// provider yields a service that fails every call with ErrClientNotReady.
func NewService(provider Provider, defaults GenerationOptions, recorders ...UsageRecorder) *Service {
	return &Service{
		provider:  provider,
		defaults:  defaults,
		recorders: recorders,
		now:       time.Now,
	}
}

// Ready reports whether a provider client was configured
func (s *Service) Ready() bool {
	return s.provider != nil
}

// Defaults returns a copy of the service-level defaults
func (s *Service) Defaults() GenerationOptions {
	return s.defaults
}

// CreateChatCompletion sends an explicit list of turns
func (s *Service) CreateChatCompletion(ctx context.Context, opts ChatCompletionOptions) (string, error) {
	return s.generate(ctx, OperationChatCompletion, Transcript{Messages: opts.Messages}, opts.Options)
}

// GenerateText sends a single user prompt
func (s *Service) GenerateText(ctx context.Context, prompt string, opts *GenerationOptions) (string, error) {
	return s.generate(ctx, OperationGenerateText, SinglePrompt{Text: prompt}, opts)
}

// GenerateWithSystemPrompt sends a system instruction followed by a user prompt
func (s *Service) GenerateWithSystemPrompt(ctx context.Context, opts SystemPromptOptions) (string, error) {
	return s.generate(ctx, OperationSystemPrompt, SystemGuided{System: opts.SystemPrompt, User: opts.UserPrompt}, opts.Options)
}

// ContinueConversation appends a new user message to prior turns
func (s *Service) ContinueConversation(ctx context.Context, opts ConversationOptions) (string, error) {
	return s.generate(ctx, OperationContinueConversation, MultiTurn{Prior: opts.Conversation, Text: opts.NewMessage}, opts.Options)
}

// AvailableModels lists the provider's model identifiers
func (s *Service) AvailableModels(ctx context.Context) ([]string, error) {
	ctx = logger.WithComponent(ctx, logger.ComponentNames.Service)
	if !s.Ready() {
		return nil, ErrClientNotReady
	}

	models, err := s.provider.ListModels(logger.WithStage(ctx, logger.LogStages.ProviderRequest))
	if err != nil {
		logger.Error(logger.WithStage(ctx, logger.LogStages.ProviderError), "Failed to list models", err,
			"operation", OperationListModels,
		)
		return nil, err
	}
	return models, nil
}

func (s *Service) generate(ctx context.Context, operation string, prompt Prompt, overrides *GenerationOptions) (string, error) {
	ctx = logger.WithComponent(ctx, logger.ComponentNames.Service)

	messages, err := Compose(prompt)
	if err != nil {
		logger.Debug(logger.WithStage(ctx, logger.LogStages.Composition), "Prompt rejected",
			"operation", operation,
			"reason", err.Error(),
		)
		return "", err
	}

	params := ResolveParameters(overrides, &s.defaults)
	logger.Debug(logger.WithStage(ctx, logger.LogStages.Resolution), "Parameters resolved",
		"operation", operation,
		"parameters", params,
		"message_count", len(messages),
	)

	return s.invoke(ctx, operation, ChatCompletionRequest{Messages: messages, Parameters: params})
}

// invoke issues exactly one provider call and returns the first choice's
// content. Provider errors are returned unchanged.
func (s *Service) invoke(ctx context.Context, operation string, req ChatCompletionRequest) (string, error) {
	if !s.Ready() {
		return "", ErrClientNotReady
	}

	start := s.now()
	completion, err := s.provider.CreateChatCompletion(logger.WithStage(ctx, logger.LogStages.ProviderRequest), req)
	duration := s.now().Sub(start)

	record := UsageRecord{
		RequestID:     logger.RequestIDFromContext(ctx),
		CorrelationID: logger.CorrelationIDFromContext(ctx),
		Operation:     operation,
		Parameters:    req.Parameters,
		MessageCount:  len(req.Messages),
		Duration:      duration,
		RequestedAt:   start.UTC(),
	}

	if err != nil {
		record.Status = UsageStatusError
		record.Error = err.Error()
		if code, ok := ProviderStatusCode(err); ok {
			record.StatusCode = code
		}
		s.record(ctx, record)

		logger.Error(logger.WithStage(ctx, logger.LogStages.ProviderError), "Provider call failed", err,
			"operation", operation,
			"model", req.Parameters.Model,
			"error_status_code", record.StatusCode,
			"duration_ms", duration.Milliseconds(),
		)
		return "", err
	}

	record.Status = UsageStatusSuccess
	record.ChoiceCount = len(completion.Choices)
	record.PromptTokens = completion.Usage.PromptTokens
	record.CompletionTokens = completion.Usage.CompletionTokens
	record.TotalTokens = completion.Usage.TotalTokens
	s.record(ctx, record)

	logger.Info(logger.WithStage(ctx, logger.LogStages.ProviderResponse), "Completion received",
		"operation", operation,
		"model", req.Parameters.Model,
		"choice_count", record.ChoiceCount,
		"total_tokens", record.TotalTokens,
		"duration_ms", duration.Milliseconds(),
	)

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Content, nil
}

func (s *Service) record(ctx context.Context, record UsageRecord) {
	for _, recorder := range s.recorders {
		recorder.RecordUsage(ctx, record)
	}
}
