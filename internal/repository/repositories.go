// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
package repository

import (
	"github.com/deppfellow/blog-posts/internal/server"
)

// Repositories is a container for all repository instances.
//
// Every repository is built on the shared pgx pool held by the server;
// the pool is safe for concurrent use, so one instance serves all requests.
type Repositories struct {
	Posts *PostRepository
}

// NewRepositories constructs the repository container from the
// application container (DB pool lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Posts: NewPostRepository(s.DB.Pool),
	}
}
