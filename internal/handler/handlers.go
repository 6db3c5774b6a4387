// Package handler is the HTTP layer: it binds and validates requests,
// calls the service layer and shapes the responses.
package handler

import (
	"github.com/deppfellow/blog-posts/internal/server"
	"github.com/deppfellow/blog-posts/internal/service"
	"github.com/deppfellow/blog-posts/static"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Posts   *PostHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s, static.FS),
		Posts:   NewPostHandler(s, services.Posts),
	}
}
