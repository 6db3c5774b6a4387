package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/deppfellow/blog-posts/internal/metrics"
	"github.com/labstack/echo/v4"
)

// Metrics records request counts and latencies for Prometheus. Requests
// that matched no route share the "unmatched" path label so that random
// URLs can't grow the label set.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" || errors.Is(err, echo.ErrNotFound) {
				path = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(responseStatus(c, err))

			metrics.HTTPRequestsTotal.WithLabelValues(path, method, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
