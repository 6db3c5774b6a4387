// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/blog-posts/internal/repository"
	"github.com/deppfellow/blog-posts/internal/server"
)

type Services struct {
	Posts *PostService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// A nil *job.JobService must not become a non-nil PostNotifier.
	var notifier PostNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Posts: NewPostService(repos.Posts, notifier, s.Logger),
	}, nil
}
