package errs

import (
	"net/http"
	"strings"
)

// New is the single constructor of the error envelope.
//
// Every other constructor in this file delegates to it, so the response
// shape cannot drift between status codes.
func New(status int, message string) *HTTPError {
	return &HTTPError{
		// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Parameters:
//   - message: text to send to client
//   - override: the message is safe to show to end users as-is
func NewBadRequestError(message string, override bool) *HTTPError {
	err := New(http.StatusBadRequest, message)
	err.Override = override
	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool) *HTTPError {
	err := New(http.StatusNotFound, message)
	err.Override = override
	return err
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError
// carrying the generic status text, not the real internal error message.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// NewInternalServerErrorWithMessage creates a 500 whose message describes
// the failure. Handlers use it where the failure description is part of
// the response contract (e.g. "Failed to fetch posts: ...").
func NewInternalServerErrorWithMessage(message string) *HTTPError {
	return New(http.StatusInternalServerError, message)
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
//
//	return errs.ValidationError(err)
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false)
}

// NewValidationFailedError builds a 400 whose message lists every field error:
//
//	"Validation failed: slug is required, title is required"
func NewValidationFailedError(fieldErrors []FieldError) *HTTPError {
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fe.Field+" "+fe.Error)
	}

	message := "Validation failed"
	if len(parts) > 0 {
		message += ": " + strings.Join(parts, ", ")
	}

	err := NewBadRequestError(message, true)
	err.Errors = fieldErrors
	return err
}
