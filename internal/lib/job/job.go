// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using asynq.Server.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/blog-posts/internal/config"
	"github.com/deppfellow/blog-posts/internal/lib/email"
	"github.com/deppfellow/blog-posts/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Enqueuer is the producer side of asynq. *asynq.Client implements it.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	// client is used to enqueue tasks into Redis.
	client Enqueuer

	// server runs worker processes that pull tasks from Redis and execute handlers.
	server *asynq.Server

	// mailer delivers the emails the task handlers produce.
	mailer PostAddedMailer

	// notifyEmail receives the post-added notifications.
	notifyEmail string

	logger *zerolog.Logger
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// It builds both:
//   - an asynq.Client (to push jobs)
//   - an asynq.Server (to process jobs)
//
// It also configures queue weights so "critical" tasks get more worker share.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	// Concurrency = 10 means up to 10 tasks can be processed in parallel,
	// split across queues by weight.
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		client:      client,
		server:      server,
		mailer:      email.NewClient(cfg, logger),
		notifyEmail: cfg.Integration.NotifyEmail,
		logger:      logger,
	}
}

// Start registers task handlers and starts the background worker server.
// asynq.Server.Start does not block; workers run until Stop.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskPostAdded, j.handlePostAddedTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	if j.server != nil {
		j.server.Shutdown()
	}
	if err := j.client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// EnqueuePostAdded schedules the post-added notification for post.
func (j *JobService) EnqueuePostAdded(ctx context.Context, post model.Post) error {
	task, err := NewPostAddedTask(post)
	if err != nil {
		return fmt.Errorf("failed to build post added task: %w", err)
	}

	info, err := j.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue post added task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int64("post_id", post.ID).
		Msg("enqueued post added task")

	return nil
}
