package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/blog-posts/internal/middleware"
	"github.com/deppfellow/blog-posts/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves GET /status for load balancers and uptime checks.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckResult is the outcome of probing one dependency.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

type probe struct {
	name string
	ping func(ctx context.Context) error
	// required dependencies make the service unhealthy when they fail.
	required bool
}

// probes lists the dependencies observability.health_checks enables and
// the server actually has.
func (h *HealthHandler) probes() []probe {
	checks := h.server.Config.Observability.HealthChecks

	var probes []probe
	if h.server.DB != nil && checks.Runs("database") {
		probes = append(probes, probe{name: "database", ping: h.server.DB.Ping, required: true})
	}
	if h.server.Redis != nil && checks.Runs("redis") {
		probes = append(probes, probe{
			name: "redis",
			ping: func(ctx context.Context) error { return h.server.Redis.Ping(ctx).Err() },
		})
	}
	return probes
}

// CheckHealth answers 200 when every required dependency responds and
// 503 otherwise. Redis only feeds notifications, so a failing Redis is
// reported without making the service unhealthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult),
	}
	timeout := h.server.Config.Observability.HealthChecks.Timeout

	for _, p := range h.probes() {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		probeStart := time.Now()
		err := p.ping(ctx)
		cancel()

		result := CheckResult{Status: "healthy", ResponseTime: time.Since(probeStart).String()}
		if err != nil {
			result.Status = "unhealthy"
			result.Error = err.Error()
			if p.required {
				response.Status = "unhealthy"
			}

			logger.Error().Err(err).Str("check", p.name).Msg("health check failed")
			h.recordHealthCheckError(p.name, err, time.Since(probeStart))
		}
		response.Checks[p.name] = result
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Str("status", response.Status).
		Msg("health check completed")

	if response.Status != "healthy" {
		return c.JSON(http.StatusServiceUnavailable, response)
	}
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordHealthCheckError(check string, err error, elapsed time.Duration) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}
	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       check,
		"operation":        "health_check",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
