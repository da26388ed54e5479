package validator

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/aashari/go-openai-text-api/internal/errors"
	"github.com/go-playground/validator/v10"
)

// MaxRequestBodyBytes caps the size of a JSON request body
const MaxRequestBodyBytes = 1 << 20

// embeddedSegment marks embedded structs in a namespace; their fields are
// reported as if declared on the parent.
const embeddedSegment = "~"

var validate = New()

// New returns a validator that reports JSON field names and knows the
// notblank rule
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" && fld.Anonymous {
			return embeddedSegment
		}
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	return v
}

// notBlank rejects strings that are empty after trimming whitespace
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// ValidateStruct checks v against its validate tags
func ValidateStruct(v interface{}) *errors.APIError {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// DecodeAndValidate reads a JSON body into dst and validates it
func DecodeAndValidate(r *http.Request, dst interface{}) *errors.APIError {
	if r.Body == nil {
		return errors.NewValidationError("Request body is required")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return formatDecodeError(err)
	}

	return ValidateStruct(dst)
}

func formatDecodeError(err error) *errors.APIError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case stderrors.Is(err, io.EOF):
		return errors.NewValidationError("Request body is required")
	case stderrors.Is(err, io.ErrUnexpectedEOF):
		return errors.NewValidationError("Request body is not valid JSON").WithDetails("unexpected end of input")
	case stderrors.As(err, &typeErr):
		return errors.NewValidationError(fmt.Sprintf("field '%s' must be of type %s", typeErr.Field, jsonTypeName(typeErr.Type))).
			WithDetails(err.Error())
	case stderrors.As(err, &syntaxErr):
		return errors.NewValidationError("Request body is not valid JSON").
			WithDetails(fmt.Sprintf("syntax error at offset %d", syntaxErr.Offset))
	default:
		return errors.NewValidationError("Invalid request body").WithDetails(err.Error())
	}
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Bool:
		return "boolean"
	default:
		return t.String()
	}
}

// formatValidationError formats validator errors into APIError
func formatValidationError(err error) *errors.APIError {
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return errors.NewValidationError(fmt.Sprintf("Request validation failed: %s", strings.Join(messages, "; "))).
			WithCode("invalid_request")
	}
	return errors.NewValidationError(fmt.Sprintf("Request validation failed: %s", err.Error()))
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	segments := strings.Split(e.Namespace(), ".")
	kept := make([]string, 0, len(segments))
	for _, segment := range segments[1:] {
		if segment != embeddedSegment {
			kept = append(kept, segment)
		}
	}
	field := strings.Join(kept, ".")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", field)
	case "notblank":
		return fmt.Sprintf("field '%s' must not be blank", field)
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("field '%s' must contain at least %s item(s)", field, e.Param())
		}
		return fmt.Sprintf("field '%s' must be at least %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("field '%s' must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("field '%s' must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of: %s", field, e.Param())
	case "required_if":
		if parts := strings.Fields(e.Param()); len(parts) == 2 {
			return fmt.Sprintf("field '%s' is required when %s is %s", field, strings.ToLower(parts[0]), parts[1])
		}
		return fmt.Sprintf("field '%s' is required when %s", field, e.Param())
	default:
		return fmt.Sprintf("field '%s' failed validation: %s", field, e.Tag())
	}
}
