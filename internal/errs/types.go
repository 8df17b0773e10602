package errs

import "strings"

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Status: HTTP status code.
//   - Message: human-friendly message, sent when Errors is nil.
//   - Errors: structured payload (e.g. validation errors) sent instead of Message.
//   - cause: the underlying error. Logged, unwrapped, never serialized.
type HTTPError struct {
	Status  int
	Message string
	Errors  any

	cause error
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the internal cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is also an *HTTPError.
//
// This does NOT compare Status or Message, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// Payload returns what goes into the envelope's `errors` member.
func (e *HTTPError) Payload() any {
	if e.Errors != nil {
		return e.Errors
	}
	return e.Message
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes for logs.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
