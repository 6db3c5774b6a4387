// Package errs defines the error envelope returned to API clients.
//
// Every failed request is answered with the same JSON shape:
//
//	{ "error": "<human readable message>" }
//
// HTTPError carries the status code and the message; the global error
// handler in the middleware package writes it to the response.
package errs

import (
	"strings"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ Field: "slug", Error: "is required" }
//
// Field errors are folded into the envelope message; they are kept on the
// HTTPError so they can be logged individually.
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "slug").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type handlers return to produce an error response.
//
// It implements the `error` interface via Error().
// Only Message is serialized, under the key "error". Status, Code and
// Errors stay server-side: Status becomes the response status code, Code
// and Errors end up in logs.
type HTTPError struct {
	Code    string `json:"-"`
	Message string `json:"error"`
	Status  int    `json:"-"`

	// Override marks messages that are safe to show to end users verbatim.
	Override bool `json:"-"`

	// Errors holds field-level validation errors, if any.
	Errors []FieldError `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// It returns the Message, so printing/logging the error shows the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// This does NOT compare Code/Status/etc; it only checks the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
