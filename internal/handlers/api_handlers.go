package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/aashari/go-openai-text-api/internal/errors"
	"github.com/aashari/go-openai-text-api/internal/llm"
	"github.com/aashari/go-openai-text-api/internal/logger"
	"github.com/aashari/go-openai-text-api/internal/utils"
	"github.com/aashari/go-openai-text-api/internal/validator"
)

// APIHandlers exposes the text-generation service over HTTP
type APIHandlers struct {
	Service *llm.Service
}

// NewAPIHandlers creates a new APIHandlers instance
func NewAPIHandlers(service *llm.Service) *APIHandlers {
	return &APIHandlers{Service: service}
}

// GenerateTextHandler handles single-prompt generation
// @Summary      Generate text from a prompt
// @Description  Sends the prompt as a single user message and returns the first completion
// @Tags         openai
// @Accept       json
// @Produce      json
// @Param        request  body      handlers.GenerateTextRequest  true  "Prompt and optional overrides"
// @Success      200      {object}  handlers.ResultResponse
// @Failure      400      {object}  errors.ErrorResponse  "Invalid request"
// @Failure      502      {object}  errors.ErrorResponse  "Provider failure"
// @Failure      503      {object}  errors.ErrorResponse  "Client not configured"
// @Router       /openai/generate-text [post]
func (h *APIHandlers) GenerateTextHandler(w http.ResponseWriter, r *http.Request) {
	ctx := handlerContext(r)

	var req GenerateTextRequest
	if apiErr := validator.DecodeAndValidate(r, &req); apiErr != nil {
		errors.HandleError(ctx, w, apiErr, http.StatusBadRequest)
		return
	}
	logger.Debug(logger.WithStage(ctx, logger.LogStages.RequestValidated), "Generate text request validated",
		"model", req.Model,
	)

	result, err := h.Service.GenerateText(ctx, req.Prompt, req.GenerationOverrides.options())
	if err != nil {
		handleServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, ResultResponse{Result: result})
}

// ChatCompletionHandler handles explicit conversations
// @Summary      Chat completion
// @Description  Sends the given turns in order and returns the first completion
// @Tags         openai
// @Accept       json
// @Produce      json
// @Param        request  body      handlers.ChatCompletionRequest  true  "Messages and optional overrides"
// @Success      200      {object}  handlers.ResultResponse
// @Failure      400      {object}  errors.ErrorResponse  "Invalid request"
// @Failure      502      {object}  errors.ErrorResponse  "Provider failure"
// @Failure      503      {object}  errors.ErrorResponse  "Client not configured"
// @Router       /openai/chat-completion [post]
func (h *APIHandlers) ChatCompletionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := handlerContext(r)

	var req ChatCompletionRequest
	if apiErr := validator.DecodeAndValidate(r, &req); apiErr != nil {
		errors.HandleError(ctx, w, apiErr, http.StatusBadRequest)
		return
	}
	logger.Debug(logger.WithStage(ctx, logger.LogStages.RequestValidated), "Chat completion request validated",
		"message_count", len(req.Messages),
		"model", req.Model,
	)

	result, err := h.Service.CreateChatCompletion(ctx, llm.ChatCompletionOptions{
		Messages: toMessages(req.Messages),
		Options:  req.GenerationOverrides.options(),
	})
	if err != nil {
		handleServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, ResultResponse{Result: result})
}

// SystemPromptHandler handles system-guided generation
// @Summary      Generate with a system prompt
// @Description  Sends a system instruction followed by a user prompt
// @Tags         openai
// @Accept       json
// @Produce      json
// @Param        request  body      handlers.SystemPromptRequest  true  "System and user prompts with optional overrides"
// @Success      200      {object}  handlers.ResultResponse
// @Failure      400      {object}  errors.ErrorResponse  "Invalid request"
// @Failure      502      {object}  errors.ErrorResponse  "Provider failure"
// @Failure      503      {object}  errors.ErrorResponse  "Client not configured"
// @Router       /openai/system-prompt [post]
func (h *APIHandlers) SystemPromptHandler(w http.ResponseWriter, r *http.Request) {
	ctx := handlerContext(r)

	var req SystemPromptRequest
	if apiErr := validator.DecodeAndValidate(r, &req); apiErr != nil {
		errors.HandleError(ctx, w, apiErr, http.StatusBadRequest)
		return
	}

	result, err := h.Service.GenerateWithSystemPrompt(ctx, llm.SystemPromptOptions{
		SystemPrompt: req.SystemPrompt,
		UserPrompt:   req.UserPrompt,
		Options:      req.GenerationOverrides.options(),
	})
	if err != nil {
		handleServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, ResultResponse{Result: result})
}

// ContinueConversationHandler appends a user message to prior turns
// @Summary      Continue a conversation
// @Description  Sends the prior turns followed by the new user message. The history is not stored.
// @Tags         openai
// @Accept       json
// @Produce      json
// @Param        request  body      handlers.ContinueConversationRequest  true  "Prior turns, new message and optional overrides"
// @Success      200      {object}  handlers.ResultResponse
// @Failure      400      {object}  errors.ErrorResponse  "Invalid request"
// @Failure      502      {object}  errors.ErrorResponse  "Provider failure"
// @Failure      503      {object}  errors.ErrorResponse  "Client not configured"
// @Router       /openai/continue-conversation [post]
func (h *APIHandlers) ContinueConversationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := handlerContext(r)

	var req ContinueConversationRequest
	if apiErr := validator.DecodeAndValidate(r, &req); apiErr != nil {
		errors.HandleError(ctx, w, apiErr, http.StatusBadRequest)
		return
	}

	result, err := h.Service.ContinueConversation(ctx, llm.ConversationOptions{
		Conversation: toMessages(req.Conversation),
		NewMessage:   req.NewMessage,
		Options:      req.GenerationOverrides.options(),
	})
	if err != nil {
		handleServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, ResultResponse{Result: result})
}

// ModelsHandler lists the models available to the configured key
// @Summary      List models
// @Description  Returns the model identifiers reported by OpenAI
// @Tags         openai
// @Produce      json
// @Success      200  {object}  handlers.ModelsResponse
// @Failure      502  {object}  errors.ErrorResponse  "Provider failure"
// @Failure      503  {object}  errors.ErrorResponse  "Client not configured"
// @Router       /openai/models [get]
func (h *APIHandlers) ModelsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := handlerContext(r)

	models, err := h.Service.AvailableModels(ctx)
	if err != nil {
		handleServiceError(ctx, w, err)
		return
	}
	if models == nil {
		models = []string{}
	}
	writeJSON(ctx, w, http.StatusOK, ModelsResponse{Models: models})
}

// ExamplesHandler returns sample payloads for every generation endpoint
// @Summary      Example payloads
// @Tags         openai
// @Produce      json
// @Success      200  {object}  handlers.ExamplesResponse
// @Router       /openai/examples [get]
func (h *APIHandlers) ExamplesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(handlerContext(r), w, http.StatusOK, ExamplesResponse{Examples: examplePayloads})
}

func handlerContext(r *http.Request) context.Context {
	return logger.WithComponent(r.Context(), logger.ComponentNames.Handler)
}

// handleServiceError maps service errors onto the error envelope
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	status, apiErr := translateServiceError(err)
	errors.HandleError(ctx, w, apiErr, status)
}

func translateServiceError(err error) (int, *errors.APIError) {
	var inputErr *llm.InputError
	switch {
	case stderrors.As(err, &inputErr):
		return http.StatusBadRequest, errors.NewValidationError(err.Error()).WithCode("invalid_input").WithDetails(inputErr.Field)
	case stderrors.Is(err, llm.ErrInvalidInput):
		return http.StatusBadRequest, errors.NewValidationError(err.Error()).WithCode("invalid_input")
	case stderrors.Is(err, llm.ErrClientNotReady):
		return http.StatusServiceUnavailable, errors.NewConfigurationError(err.Error()).WithCode("client_not_ready")
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errors.NewExternalError("OpenAI request timed out").WithCode("provider_timeout")
	}

	apiErr := errors.NewExternalError("OpenAI request failed").WithCode("provider_error").WithDetails(err.Error())
	if status, ok := llm.ProviderStatusCode(err); ok {
		return status, apiErr
	}
	return http.StatusBadGateway, apiErr
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set(utils.HeaderContentType, utils.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "Failed to write response", err)
	}
}
