// Package server defines the Server container that composes the
// service's dependencies and runs the HTTP listener.
//
// It owns the lifecycle of:
//   - configuration and the logger (with the optional New Relic service)
//   - the database pool
//   - the optional Redis client
//   - the optional background job service (asynq)
//   - the http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/blog-posts/internal/config"
	"github.com/deppfellow/blog-posts/internal/database"
	"github.com/deppfellow/blog-posts/internal/lib/job"
	loggerPkg "github.com/deppfellow/blog-posts/internal/logger"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisPingTimeout bounds the startup ping to Redis.
const RedisPingTimeout = 5 * time.Second

// Server holds shared resources. It is not the HTTP server itself.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	DB *database.Database

	// Redis is nil when no address is configured.
	Redis *redis.Client

	// Job is nil unless both Redis and notifications are configured.
	Job *job.JobService

	httpServer *http.Server
}

// New connects to the database, and to Redis and the job queue when they
// are configured.
//
// A Redis that does not answer the startup ping is logged and kept; the
// status endpoint reports it. A database that does not answer is fatal.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(ctx, cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}

	if cfg.Redis.Enabled() {
		s.Redis = newRedisClient(ctx, cfg, logger, loggerService)
	}

	switch {
	case !cfg.Integration.NotificationsEnabled():
		logger.Info().Msg("post notifications disabled: no resend api key or notify email")
	case s.Redis == nil:
		logger.Warn().Msg("post notifications disabled: redis is not configured")
	default:
		s.Job = job.NewJobService(logger, cfg)
		if err := s.Job.Start(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to start job service: %w", err)
		}
	}

	return s, nil
}

func newRedisClient(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService.GetApplication() != nil {
		client.AddHook(nrredis.NewHook(client.Options()))
	}

	pingCtx, cancel := context.WithTimeout(ctx, RedisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error().Err(err).Str("address", cfg.Redis.Address).Msg("failed to connect to redis, continuing")
	}

	return client
}

// SetupHTTPServer configures the listener around handler.
// Config timeouts are whole seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start serves HTTP until Shutdown is called. It returns nil after a
// graceful shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires, then releases
// the job service, Redis and the database pool. Every resource is
// released even if an earlier step fails.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown HTTP server: %w", err))
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database connection: %w", err))
		}
	}

	return errors.Join(errs...)
}
