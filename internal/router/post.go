package router

import (
	"net/http"

	"github.com/deppfellow/blog-posts/internal/handler"
	"github.com/deppfellow/blog-posts/internal/model"
	"github.com/labstack/echo/v4"
)

// registerPostRoutes mounts the posts API on g.
//
// Update and delete are also reachable through POST for clients that
// cannot send PUT or a DELETE with a body.
func registerPostRoutes(g *echo.Group, h *handler.Handlers) {
	p := h.Posts

	posts := g.Group("/posts")

	posts.GET("", handler.Handle(p.Handler, p.ListPosts, http.StatusOK,
		handler.NewRequest[model.ListPostsRequest]()))
	posts.GET("/category/:category", handler.Handle(p.Handler, p.ListByCategory, http.StatusOK,
		handler.NewRequest[model.CategoryPostsRequest]()))
	posts.GET("/tag/:tag", handler.Handle(p.Handler, p.ListByTag, http.StatusOK,
		handler.NewRequest[model.TagPostsRequest]()))
	posts.GET("/:slug", handler.Handle(p.Handler, p.GetPost, http.StatusOK,
		handler.NewRequest[model.GetPostRequest]()))

	posts.POST("", handler.Handle(p.Handler, p.AddPost, http.StatusOK,
		handler.NewRequest[model.AddPostRequest]()))

	update := handler.Handle(p.Handler, p.UpdatePost, http.StatusOK,
		handler.NewRequest[model.UpdatePostRequest]())
	posts.PUT("", update)
	posts.POST("/update", update)

	remove := handler.Handle(p.Handler, p.DeletePost, http.StatusOK,
		handler.NewRequest[model.DeletePostRequest]())
	posts.DELETE("", remove)
	posts.POST("/delete", remove)
}
