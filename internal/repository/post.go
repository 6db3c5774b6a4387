package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/blog-posts/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrPostNotFound is returned (wrapped) by Update and Delete when no post
// has the requested id.
var ErrPostNotFound = errors.New("post not found")

// DBTX is the subset of *pgxpool.Pool the repository needs.
// A pgx.Tx satisfies it as well.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostRepository persists posts in the posts table.
type PostRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) *PostRepository {
	return &PostRepository{db: db}
}

const postColumns = `id, slug, title, description, body, category, tags, created_at, updated_at`

// GetAll returns every post, newest first.
func (r *PostRepository) GetAll(ctx context.Context) ([]model.Post, error) {
	return r.list(ctx, `SELECT `+postColumns+` FROM posts ORDER BY created_at DESC, id DESC`)
}

// GetByCategory returns the posts whose category equals category, newest first.
func (r *PostRepository) GetByCategory(ctx context.Context, category string) ([]model.Post, error) {
	return r.list(ctx, `SELECT `+postColumns+` FROM posts WHERE category = $1 ORDER BY created_at DESC, id DESC`, category)
}

// GetByTag returns the posts carrying tag, newest first.
func (r *PostRepository) GetByTag(ctx context.Context, tag string) ([]model.Post, error) {
	return r.list(ctx, `SELECT `+postColumns+` FROM posts WHERE $1 = ANY(tags) ORDER BY created_at DESC, id DESC`, tag)
}

func (r *PostRepository) list(ctx context.Context, query string, args ...any) ([]model.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	posts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("failed to collect posts: %w", err)
	}

	return posts, nil
}

// GetBySlug looks a post up by slug. A missing post is not an error: it
// is reported as a Lookup with Status LookupNotFound.
func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (model.Lookup, error) {
	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug)
	if err != nil {
		return model.NotFound(), fmt.Errorf("failed to query post: %w", err)
	}

	post, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NotFound(), nil
		}
		return model.NotFound(), fmt.Errorf("failed to collect post: %w", err)
	}

	return model.Found(post), nil
}

// Insert stores a new post. The store assigns id and timestamps and writes
// them back into post.
func (r *PostRepository) Insert(ctx context.Context, post *model.Post) error {
	err := r.db.QueryRow(ctx, `
INSERT INTO posts (slug, title, description, body, category, tags)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`,
		post.Slug, post.Title, post.Description, post.Body, post.Category, tagsOrEmpty(post.Tags),
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// Update replaces every field of the post identified by post.ID except
// the id itself and created_at.
func (r *PostRepository) Update(ctx context.Context, post *model.Post) error {
	err := r.db.QueryRow(ctx, `
UPDATE posts
SET slug = $2, title = $3, description = $4, body = $5, category = $6, tags = $7, updated_at = NOW()
WHERE id = $1
RETURNING created_at, updated_at`,
		post.ID, post.Slug, post.Title, post.Description, post.Body, post.Category, tagsOrEmpty(post.Tags),
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("post %d: %w", post.ID, ErrPostNotFound)
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

// Delete removes the post with the given id.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %d: %w", id, ErrPostNotFound)
	}

	return nil
}

// tags is NOT NULL; a post sent without tags is stored with none.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
