package service

import (
	"context"

	"github.com/deppfellow/blog-posts/internal/metrics"
	"github.com/deppfellow/blog-posts/internal/model"
	"github.com/rs/zerolog"
)

// PostStore is the data-access interface for posts.
// repository.PostRepository is the production implementation.
type PostStore interface {
	GetAll(ctx context.Context) ([]model.Post, error)
	GetByCategory(ctx context.Context, category string) ([]model.Post, error)
	GetByTag(ctx context.Context, tag string) ([]model.Post, error)
	GetBySlug(ctx context.Context, slug string) (model.Lookup, error)
	Insert(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id int64) error
}

// PostNotifier is told about newly added posts. job.JobService implements
// it by enqueueing a background task.
type PostNotifier interface {
	EnqueuePostAdded(ctx context.Context, post model.Post) error
}

// PostService performs exactly one store call per operation. It never
// retries; a failed call is returned to the handler as-is.
type PostService struct {
	store    PostStore
	notifier PostNotifier
	logger   *zerolog.Logger
}

// NewPostService builds a PostService. notifier may be nil, in which case
// no notification is sent for added posts.
func NewPostService(store PostStore, notifier PostNotifier, logger *zerolog.Logger) *PostService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &PostService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *PostService) ListAll(ctx context.Context) ([]model.Post, error) {
	posts, err := s.store.GetAll(ctx)
	if err != nil {
		metrics.PostStoreErrors.WithLabelValues("get_all").Inc()
		return nil, err
	}
	return posts, nil
}

func (s *PostService) ListByCategory(ctx context.Context, category string) ([]model.Post, error) {
	posts, err := s.store.GetByCategory(ctx, category)
	if err != nil {
		metrics.PostStoreErrors.WithLabelValues("get_by_category").Inc()
		return nil, err
	}
	return posts, nil
}

func (s *PostService) ListByTag(ctx context.Context, tag string) ([]model.Post, error) {
	posts, err := s.store.GetByTag(ctx, tag)
	if err != nil {
		metrics.PostStoreErrors.WithLabelValues("get_by_tag").Inc()
		return nil, err
	}
	return posts, nil
}

func (s *PostService) GetBySlug(ctx context.Context, slug string) (model.Lookup, error) {
	lookup, err := s.store.GetBySlug(ctx, slug)
	if err != nil {
		metrics.PostStoreErrors.WithLabelValues("get_by_slug").Inc()
		return model.NotFound(), err
	}
	return lookup, nil
}

// Add inserts post and, when a notifier is configured, enqueues a
// post-added notification. The notification is best effort: its failure
// is logged and counted but does not fail the insert.
func (s *PostService) Add(ctx context.Context, post model.Post) error {
	if err := s.store.Insert(ctx, &post); err != nil {
		metrics.PostStoreErrors.WithLabelValues("insert").Inc()
		return err
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueuePostAdded(ctx, post); err != nil {
			metrics.NotificationEnqueueErrors.Inc()
			s.logger.Error().
				Err(err).
				Int64("post_id", post.ID).
				Str("slug", post.Slug).
				Msg("failed to enqueue post added notification")
		}
	}

	return nil
}

// Update replaces the post identified by post.ID.
func (s *PostService) Update(ctx context.Context, post model.Post) error {
	if err := s.store.Update(ctx, &post); err != nil {
		metrics.PostStoreErrors.WithLabelValues("update").Inc()
		return err
	}
	return nil
}

// Delete removes the post identified by id.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		metrics.PostStoreErrors.WithLabelValues("delete").Inc()
		return err
	}
	return nil
}
