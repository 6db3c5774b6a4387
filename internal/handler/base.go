package handler

import (
	"time"

	"github.com/deppfellow/blog-posts/internal/middleware"
	"github.com/deppfellow/blog-posts/internal/server"
	"github.com/deppfellow/blog-posts/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is embedded by concrete handlers to reach the Server container.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it receives a bound and validated
// request and returns the value to serialize as JSON.
//
// Req is a pointer type such as *model.GetPostRequest.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// NewRequest returns a constructor for zero-valued *T payloads, for use
// with Handle.
func NewRequest[T any]() func() *T {
	return func() *T { return new(T) }
}

// Handle adapts a typed endpoint to echo.HandlerFunc.
//
// Every request gets a fresh payload from newReq. The pipeline then:
//   - binds and validates the payload
//   - runs the endpoint
//   - writes the result as JSON with status
//
// Failures are returned unchanged so the global error handler writes the
// envelope. Each phase is logged with the request-scoped logger and
// timed on the New Relic transaction when there is one.
//
//	g.GET("/posts/:slug", handler.Handle(h.Handler, h.GetPost, http.StatusOK,
//		handler.NewRequest[model.GetPostRequest]()))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	endpoint HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := newReq()

		txn := newrelic.FromContext(c.Request().Context())
		if txn != nil {
			txn.AddAttribute("handler.name", c.Path())
		}

		logger := middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("route", c.Path()).
			Logger()

		logger.Debug().Msg("handling request")

		validationStart := time.Now()
		if err := validation.BindAndValidate(c, req); err != nil {
			validationDuration := time.Since(validationStart)

			logger.Warn().
				Err(err).
				Dur("validation_duration", validationDuration).
				Msg("request validation failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("validation.status", "failed")
				txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
			}
			return err
		}

		validationDuration := time.Since(validationStart)
		if txn != nil {
			txn.AddAttribute("validation.status", "success")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		handlerStart := time.Now()
		result, err := endpoint(c, req)
		handlerDuration := time.Since(handlerStart)

		if err != nil {
			logger.Error().
				Err(err).
				Dur("handler_duration", handlerDuration).
				Dur("total_duration", time.Since(start)).
				Msg("handler execution failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("handler.status", "error")
				txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			}
			return err
		}

		if txn != nil {
			txn.AddAttribute("handler.status", "success")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
		}

		logger.Info().
			Dur("validation_duration", validationDuration).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("request completed successfully")

		return c.JSON(status, result)
	}
}
