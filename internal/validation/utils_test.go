package validation

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/deppfellow/blog-posts/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantPrefix string
	}{
		{name: "empty", body: "", wantPrefix: "Failed to decode request body: request body is empty"},
		{name: "whitespace", body: "  \n", wantPrefix: "Failed to decode request body: request body is empty"},
		{name: "string literal", body: `"not json"`, wantPrefix: "Failed to decode request body: json: cannot unmarshal string"},
		{name: "syntax", body: `not json`, wantPrefix: "Failed to decode request body: invalid character"},
		{name: "wrong type", body: `{"age":"old"}`, wantPrefix: "Failed to decode request body: json: cannot unmarshal string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := DecodeJSONBody(strings.NewReader(tt.body), &p)

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.True(t, strings.HasPrefix(httpErr.Message, tt.wantPrefix), httpErr.Message)
		})
	}
}

func TestDecodeJSONBody_Valid(t *testing.T) {
	var p payload
	require.NoError(t, DecodeJSONBody(strings.NewReader(`{"name":"ada","age":36}`), &p))
	assert.Equal(t, payload{Name: "ada", Age: 36}, p)
}

func TestDecodeJSONBody_NilBody(t *testing.T) {
	var p payload
	err := DecodeJSONBody(nil, &p)
	assert.EqualError(t, err, "Failed to decode request body: request body is empty")
}

type tooLargeReader struct{}

func (tooLargeReader) Read([]byte) (int, error) {
	return 0, echo.ErrStatusRequestEntityTooLarge
}

func TestDecodeJSONBody_KeepsBodyLimitError(t *testing.T) {
	var p payload
	err := DecodeJSONBody(tooLargeReader{}, &p)

	var echoErr *echo.HTTPError
	require.True(t, errors.As(err, &echoErr))
	assert.Equal(t, http.StatusRequestEntityTooLarge, echoErr.Code)
}

type customValidated struct{}

func (customValidated) Validate() error {
	return CustomValidationErrors{{Field: "slug", Message: "must be lowercase"}}
}

func TestExtractValidationError_Custom(t *testing.T) {
	fieldErrors := validateStruct(customValidated{})
	assert.Equal(t, []errs.FieldError{{Field: "slug", Error: "must be lowercase"}}, fieldErrors)
}

type plainFailure struct{}

func (plainFailure) Validate() error { return errors.New("nope") }

func TestExtractValidationError_Plain(t *testing.T) {
	fieldErrors := validateStruct(plainFailure{})
	assert.Equal(t, []errs.FieldError{{Field: "request", Error: "nope"}}, fieldErrors)
}
