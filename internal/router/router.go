// Package router builds the Echo instance: the middleware chain, the
// error handler and every route.
package router

import (
	"github.com/deppfellow/blog-posts/internal/handler"
	"github.com/deppfellow/blog-posts/internal/middleware"
	"github.com/deppfellow/blog-posts/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires the middleware in request order:
//
//	request id -> New Relic -> tracing attributes -> request logger
//	-> metrics -> CORS -> secure headers -> body limit -> rate limit
//	-> recover -> handler
//
// The context enhancer runs right after New Relic so the request logger
// carries the trace ids.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.Global.RequestLogger(),
		middleware.Metrics(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.BodyLimit(),
		middlewares.RateLimit.RateLimiter(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerPostRoutes(v1, h)

	return router
}
