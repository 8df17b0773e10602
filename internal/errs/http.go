package errs

import (
	"net/http"
)

// Fixed client-facing messages.
const (
	MessageInvalidPayload   = "Invalid payload"
	MessageValidationFailed = "Validation failed"
	MessageStorePersonError = "Error storing person info"
)

// NewBadRequestError creates a 400 Bad Request HTTPError carrying a plain message.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewValidationError creates a 400 Bad Request HTTPError whose envelope
// payload is the structured field errors rather than a message.
func NewValidationError(fieldErrors any) *HTTPError {
	return &HTTPError{
		Message: MessageValidationFailed,
		Status:  http.StatusBadRequest,
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
func NewMethodNotAllowedError(message string) *HTTPError {
	return &HTTPError{
		Message: message,
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewServiceUnavailableError creates a 503 Service Unavailable HTTPError.
func NewServiceUnavailableError(payload any, cause error) *HTTPError {
	return &HTTPError{
		Message: http.StatusText(http.StatusServiceUnavailable),
		Status:  http.StatusServiceUnavailable,
		Errors:  payload,
		cause:   cause,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// message is what the client sees; cause is only kept for logging.
// An empty message falls back to the generic status text.
func NewInternalServerError(message string, cause error) *HTTPError {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	return &HTTPError{
		Message: message,
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
}

// Code returns the machine-friendly code for the error's status, e.g. "BAD_REQUEST".
func (e *HTTPError) Code() string {
	return MakeUpperCaseWithUnderscores(http.StatusText(e.Status))
}
