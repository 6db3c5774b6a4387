package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/blog-posts/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,max=255"`)
// - Implement Validate() error that runs validator.Struct(req)
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
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. Path parameters are bound from `param` tags.
//  2. GET/HEAD requests bind `query` tags; every other method decodes the
//     raw body as JSON, whatever Content-Type the client sent.
//  3. payload.Validate() applies validation rules.
//
// Every failure is returned as a 400 *errs.HTTPError, except a body that
// exceeds the configured limit, which keeps Echo's 413.
//
// NOTE: payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := bind(c, payload); err != nil {
		return err
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewValidationFailedError(fieldErrors)
	}

	return nil
}

func bind(c echo.Context, payload any) error {
	binder := &echo.DefaultBinder{}

	if err := binder.BindPathParams(c, payload); err != nil {
		return errs.NewBadRequestError("Invalid path parameters", false)
	}

	switch c.Request().Method {
	case http.MethodGet, http.MethodHead:
		if err := binder.BindQueryParams(c, payload); err != nil {
			return errs.NewBadRequestError("Invalid query parameters", false)
		}
		return nil
	}

	return DecodeJSONBody(c.Request().Body, payload)
}

// DecodeJSONBody reads the whole body and unmarshals it into payload.
//
// An empty body, malformed JSON, or JSON of the wrong shape all produce a
// 400 whose message starts with "Failed to decode request body".
func DecodeJSONBody(body io.Reader, payload any) error {
	if body == nil {
		return decodeError(errors.New("request body is empty"))
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		// BodyLimit middleware reports oversize bodies through the reader.
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			return echoErr
		}
		return decodeError(err)
	}

	if len(strings.TrimSpace(string(raw))) == 0 {
		return decodeError(errors.New("request body is empty"))
	}

	if err := json.Unmarshal(raw, payload); err != nil {
		return decodeError(err)
	}

	return nil
}

func decodeError(err error) *errs.HTTPError {
	return errs.NewBadRequestError("Failed to decode request body: "+err.Error(), false)
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// InvalidValidationError or anything else a Validate() returned.
		return []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	// Convert validator.ValidationErrors into user-friendly messages.
	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min tag means:
			// - for strings: minimum length
			// - for numbers: minimum value
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "excluded_with":
			msg = fmt.Sprintf("cannot be combined with %s", strings.ToLower(err.Param()))

		case "dive":
			msg = "some items are invalid"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}
