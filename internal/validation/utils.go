package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/person-service/internal/errs"
	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"min=1"`)
// - Implement Validate() error that calls validation.Struct(req)
// - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return errs.MessageValidationFailed
}

// ValidationErrors maps a wire field name to every constraint it violated.
// It is serialized as-is into the envelope's `errors` member.
type ValidationErrors map[string][]string

func (v ValidationErrors) Error() string {
	return errs.MessageValidationFailed
}

// Add records one violation for field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// validate is shared: *validator.Validate caches struct metadata and is
// safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name so errors match what the client sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// DecodeAndValidate decodes a JSON request body into payload and validates it.
//
// Flow:
// 1) An absent body (empty, whitespace or JSON null) is a 400 "Invalid payload".
// 2) A body that is not valid JSON for payload is a 400 carrying the decoder message.
// 3) payload.Validate() failures are a 400 carrying ValidationErrors.
//
// payload must be a pointer so it can be populated.
func DecodeAndValidate(body []byte, payload Validatable) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errs.NewBadRequestError(errs.MessageInvalidPayload)
	}

	if err := json.Unmarshal(trimmed, payload); err != nil {
		return errs.NewBadRequestError(err.Error())
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewValidationError(fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) ValidationErrors {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func extractValidationError(err error) ValidationErrors {
	fieldErrors := ValidationErrors{}

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors.Add(err.Field, err.Message)
		}
		return fieldErrors
	}

	var alreadyMapped ValidationErrors
	if errors.As(err, &alreadyMapped) {
		return alreadyMapped
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a field error at all (e.g. InvalidValidationError).
		fieldErrors.Add("_", err.Error())
		return fieldErrors
	}

	for _, err := range validationErrors {
		fieldErrors.Add(err.Field(), fieldErrorMessage(err))
	}

	return fieldErrors
}

// fieldErrorMessage turns one validator failure into a message whose first
// word is the violation category ("too short", "out of range", ...).
func fieldErrorMessage(err validator.FieldError) string {
	isString := err.Kind() == reflect.String

	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		// min means minimum length for strings, minimum value for numbers.
		if isString {
			return fmt.Sprintf("too short: must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("out of range: must be at least %s", err.Param())

	case "max":
		if isString {
			return fmt.Sprintf("too long: must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("out of range: must not exceed %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", err.Field(), err.Tag())
	}
}
