package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/blog-posts/internal/config"
	"github.com/deppfellow/blog-posts/internal/errs"
	"github.com/deppfellow/blog-posts/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"http error", errs.NewNotFoundError("Post not found", true), http.StatusNotFound, "Post not found"},
		{"wrapped http error", fmt.Errorf("ctx: %w", errs.NewBadRequestError("bad", false)), http.StatusBadRequest, "bad"},
		{"route not found", echo.ErrNotFound, http.StatusNotFound, "Route not found"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method not allowed"},
		{"body too large", echo.ErrStatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge, "Request body too large"},
		{"echo message", echo.NewHTTPError(http.StatusForbidden, "nope"), http.StatusForbidden, "nope"},
		{
			"unique violation",
			&pgconn.PgError{Code: "23505", TableName: "posts", ConstraintName: "posts_slug_key"},
			http.StatusBadRequest,
			"A Post with this Slug already exists",
		},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toHTTPError(tt.err)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Server:        config.ServerConfig{MaxBodySize: "1K"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func TestGlobalErrorHandler_WritesEnvelope(t *testing.T) {
	e := echo.New()
	global := NewGlobalMiddlewares(newTestServer())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	global.GlobalErrorHandler(errs.NewInternalServerErrorWithMessage("Failed to fetch posts: db down"), c)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch posts: db down"}`, rec.Body.String())
}

func TestGlobalErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	global := NewGlobalMiddlewares(newTestServer())

	req := httptest.NewRequest(http.MethodHead, "/api/v1/posts/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	global.GlobalErrorHandler(errs.NewNotFoundError("Post not found", true), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	require.NoError(t, h(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NotNil(t, GetLogger(c))
}
