package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aashari/go-openai-text-api/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ruleMessages render a failed rule; %s receives the rule parameter
var ruleMessages = map[string]string{
	"required":   "is required",
	"gte":        "must be at least %s",
	"lte":        "must be at most %s",
	"oneof":      "must be one of: %s",
	"url":        "must be a valid URL",
	"startswith": "must start with '%s'",
}

// Validate checks ranges and required settings once at start-up
func Validate(config *Config) *errors.APIError {
	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return errors.NewConfigurationError("Configuration validation failed: " + err.Error())
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		problems = append(problems, describe(fe))
	}
	return errors.NewConfigurationError("Configuration validation failed: " + strings.Join(problems, "; ")).
		WithCode("invalid_configuration")
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	message, ok := ruleMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("field '%s' failed validation: %s", field, fe.Tag())
	}
	if strings.Contains(message, "%s") {
		message = fmt.Sprintf(message, fe.Param())
	}
	return fmt.Sprintf("field '%s' %s", field, message)
}
