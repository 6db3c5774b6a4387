package handler

import (
	"github.com/deppfellow/blog-posts/internal/errs"
	"github.com/deppfellow/blog-posts/internal/model"
	"github.com/deppfellow/blog-posts/internal/server"
	"github.com/deppfellow/blog-posts/internal/service"
	"github.com/deppfellow/blog-posts/internal/sqlerr"
	"github.com/labstack/echo/v4"
)

// PostHandler serves the post endpoints.
//
// Store failures are reported with the operation in the message:
// listings and lookups answer 500, mutations answer 400.
type PostHandler struct {
	Handler
	posts *service.PostService
}

func NewPostHandler(s *server.Server, posts *service.PostService) *PostHandler {
	return &PostHandler{
		Handler: NewHandler(s),
		posts:   posts,
	}
}

// ListPosts returns every post, or only those matching ?category= or ?tag=.
func (h *PostHandler) ListPosts(c echo.Context, req *model.ListPostsRequest) (model.PostsResponse, error) {
	ctx := c.Request().Context()

	var (
		posts []model.Post
		err   error
	)
	switch {
	case req.Category != "":
		posts, err = h.posts.ListByCategory(ctx, req.Category)
	case req.Tag != "":
		posts, err = h.posts.ListByTag(ctx, req.Tag)
	default:
		posts, err = h.posts.ListAll(ctx)
	}
	if err != nil {
		return model.PostsResponse{}, fetchPostsError(err)
	}

	return model.NewPostsResponse(posts), nil
}

func (h *PostHandler) ListByCategory(c echo.Context, req *model.CategoryPostsRequest) (model.PostsResponse, error) {
	posts, err := h.posts.ListByCategory(c.Request().Context(), req.Category)
	if err != nil {
		return model.PostsResponse{}, fetchPostsError(err)
	}
	return model.NewPostsResponse(posts), nil
}

func (h *PostHandler) ListByTag(c echo.Context, req *model.TagPostsRequest) (model.PostsResponse, error) {
	posts, err := h.posts.ListByTag(c.Request().Context(), req.Tag)
	if err != nil {
		return model.PostsResponse{}, fetchPostsError(err)
	}
	return model.NewPostsResponse(posts), nil
}

// GetPost returns the bare post with the given slug.
func (h *PostHandler) GetPost(c echo.Context, req *model.GetPostRequest) (model.Post, error) {
	lookup, err := h.posts.GetBySlug(c.Request().Context(), req.Slug)
	if err != nil {
		return model.Post{}, errs.NewInternalServerErrorWithMessage("Failed to fetch post: " + sqlerr.Describe(err))
	}
	if !lookup.IsFound() {
		return model.Post{}, errs.NewNotFoundError("Post not found", true)
	}
	return lookup.Post, nil
}

func (h *PostHandler) AddPost(c echo.Context, req *model.AddPostRequest) (model.MessageResponse, error) {
	if err := h.posts.Add(c.Request().Context(), req.ToPost()); err != nil {
		return model.MessageResponse{}, mutationError("add", err)
	}
	return model.MessageResponse{Message: model.MessagePostAdded}, nil
}

func (h *PostHandler) UpdatePost(c echo.Context, req *model.UpdatePostRequest) (model.MessageResponse, error) {
	if err := h.posts.Update(c.Request().Context(), req.ToPost()); err != nil {
		return model.MessageResponse{}, mutationError("update", err)
	}
	return model.MessageResponse{Message: model.MessagePostUpdated}, nil
}

// DeletePost removes the post whose id is given in the request body.
func (h *PostHandler) DeletePost(c echo.Context, req *model.DeletePostRequest) (model.MessageResponse, error) {
	if err := h.posts.Delete(c.Request().Context(), req.ID); err != nil {
		return model.MessageResponse{}, mutationError("delete", err)
	}
	return model.MessageResponse{Message: model.MessagePostDeleted}, nil
}

func fetchPostsError(err error) *errs.HTTPError {
	return errs.NewInternalServerErrorWithMessage("Failed to fetch posts: " + sqlerr.Describe(err))
}

func mutationError(action string, err error) *errs.HTTPError {
	return errs.NewBadRequestError("Failed to "+action+" post: "+sqlerr.Describe(err), false)
}
