package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_SerializesAsEnvelope(t *testing.T) {
	err := NewBadRequestError("Failed to add post: boom", false)
	err.Errors = []FieldError{{Field: "slug", Error: "is required"}}

	raw, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"error":"Failed to add post: boom"}`, string(raw))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err    *HTTPError
		status int
		code   string
		msg    string
	}{
		{NewBadRequestError("bad", true), http.StatusBadRequest, "BAD_REQUEST", "bad"},
		{NewNotFoundError("Post not found", true), http.StatusNotFound, "NOT_FOUND", "Post not found"},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error"},
		{NewInternalServerErrorWithMessage("Failed to fetch posts: x"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Failed to fetch posts: x"},
		{New(http.StatusTooManyRequests, "slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "slow down"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.Status)
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, tt.msg, tt.err.Error())
	}
}

func TestNewValidationFailedError(t *testing.T) {
	err := NewValidationFailedError([]FieldError{
		{Field: "slug", Error: "is required"},
		{Field: "title", Error: "is required"},
	})

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed: slug is required, title is required", err.Message)
	assert.Len(t, err.Errors, 2)

	assert.Equal(t, "Validation failed", NewValidationFailedError(nil).Message)
}

func TestHTTPError_IsAndWithMessage(t *testing.T) {
	base := NewNotFoundError("a", true)
	wrapped := fmt.Errorf("lookup: %w", base)

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	changed := base.WithMessage("b")
	assert.Equal(t, "b", changed.Message)
	assert.Equal(t, "a", base.Message)
	assert.Equal(t, base.Status, changed.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", MakeUpperCaseWithUnderscores("Request Entity Too Large"))
}
