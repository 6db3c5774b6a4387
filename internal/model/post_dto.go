package model

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared by every request type; *validator.Validate is safe
// for concurrent use and caches struct metadata.
var validate = validator.New()

// ListPostsRequest binds the optional filters of GET /posts.
// At most one of Category and Tag may be set.
type ListPostsRequest struct {
	Category string `query:"category" validate:"max=255,excluded_with=Tag"`
	Tag      string `query:"tag" validate:"max=255"`
}

func (r *ListPostsRequest) Validate() error {
	return validate.Struct(r)
}

// CategoryPostsRequest binds GET /posts/category/:category.
type CategoryPostsRequest struct {
	Category string `param:"category" validate:"required,max=255"`
}

func (r *CategoryPostsRequest) Validate() error {
	return validate.Struct(r)
}

// TagPostsRequest binds GET /posts/tag/:tag.
type TagPostsRequest struct {
	Tag string `param:"tag" validate:"required,max=255"`
}

func (r *TagPostsRequest) Validate() error {
	return validate.Struct(r)
}

// GetPostRequest binds GET /posts/:slug.
type GetPostRequest struct {
	Slug string `param:"slug" validate:"required,max=255"`
}

func (r *GetPostRequest) Validate() error {
	return validate.Struct(r)
}

// AddPostRequest is the body of POST /posts. It has the shape of a Post;
// an id, if present, is ignored because the store assigns it.
type AddPostRequest struct {
	Slug        string   `json:"slug" validate:"required,max=255"`
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Category    string   `json:"category" validate:"max=255"`
	Tags        []string `json:"tags" validate:"dive,required,max=255"`
}

func (r *AddPostRequest) Validate() error {
	return validate.Struct(r)
}

// ToPost converts the payload into a Post ready for insertion.
func (r *AddPostRequest) ToPost() Post {
	return Post{
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Body:        r.Body,
		Category:    r.Category,
		Tags:        r.Tags,
	}
}

// UpdatePostRequest is the body of PUT /posts: a full Post including id.
// Timestamps sent by the client are ignored; the store maintains them.
type UpdatePostRequest struct {
	ID          int64    `json:"id" validate:"required,min=1"`
	Slug        string   `json:"slug" validate:"required,max=255"`
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Category    string   `json:"category" validate:"max=255"`
	Tags        []string `json:"tags" validate:"dive,required,max=255"`
}

func (r *UpdatePostRequest) Validate() error {
	return validate.Struct(r)
}

// ToPost converts the payload into the Post the store should persist.
func (r *UpdatePostRequest) ToPost() Post {
	return Post{
		ID:          r.ID,
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Body:        r.Body,
		Category:    r.Category,
		Tags:        r.Tags,
	}
}

// DeletePostRequest is the body of DELETE /posts. Only id is read; the
// rest of a Post may be sent along and is ignored.
type DeletePostRequest struct {
	ID int64 `json:"id" validate:"required,min=1"`
}

func (r *DeletePostRequest) Validate() error {
	return validate.Struct(r)
}

// PostsResponse wraps a listing under the "posts" key.
type PostsResponse struct {
	Posts []Post `json:"posts"`
}

// NewPostsResponse never serializes a nil slice, so an empty listing is
// rendered as [] rather than null.
func NewPostsResponse(posts []Post) PostsResponse {
	if posts == nil {
		posts = []Post{}
	}
	return PostsResponse{Posts: posts}
}

// MessageResponse is the body of a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	MessagePostAdded   = "Post added successfully"
	MessagePostDeleted = "Post deleted successfully"
	MessagePostUpdated = "Post updated successfully"
)
