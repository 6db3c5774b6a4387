package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/blog-posts/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records calls and returns canned results.
type fakeStore struct {
	posts  []model.Post
	lookup model.Lookup
	err    error

	calls    []string
	inserted *model.Post
	updated  *model.Post
	deleted  int64
}

func (f *fakeStore) GetAll(ctx context.Context) ([]model.Post, error) {
	f.calls = append(f.calls, "get_all")
	return f.posts, f.err
}

func (f *fakeStore) GetByCategory(ctx context.Context, category string) ([]model.Post, error) {
	f.calls = append(f.calls, "get_by_category:"+category)
	return f.posts, f.err
}

func (f *fakeStore) GetByTag(ctx context.Context, tag string) ([]model.Post, error) {
	f.calls = append(f.calls, "get_by_tag:"+tag)
	return f.posts, f.err
}

func (f *fakeStore) GetBySlug(ctx context.Context, slug string) (model.Lookup, error) {
	f.calls = append(f.calls, "get_by_slug:"+slug)
	return f.lookup, f.err
}

func (f *fakeStore) Insert(ctx context.Context, post *model.Post) error {
	f.calls = append(f.calls, "insert")
	if f.err != nil {
		return f.err
	}
	post.ID = 10
	f.inserted = post
	return nil
}

func (f *fakeStore) Update(ctx context.Context, post *model.Post) error {
	f.calls = append(f.calls, "update")
	f.updated = post
	return f.err
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	f.calls = append(f.calls, "delete")
	f.deleted = id
	return f.err
}

type fakeNotifier struct {
	err   error
	posts []model.Post
}

func (f *fakeNotifier) EnqueuePostAdded(ctx context.Context, post model.Post) error {
	f.posts = append(f.posts, post)
	return f.err
}

func TestPostService_Lists(t *testing.T) {
	store := &fakeStore{posts: []model.Post{{ID: 1, Slug: "a"}}}
	svc := NewPostService(store, nil, nil)
	ctx := context.Background()

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.ListByCategory(ctx, "go")
	require.NoError(t, err)

	_, err = svc.ListByTag(ctx, "pgx")
	require.NoError(t, err)

	assert.Equal(t, []string{"get_all", "get_by_category:go", "get_by_tag:pgx"}, store.calls)
}

func TestPostService_ListFailureReturnsNoPosts(t *testing.T) {
	store := &fakeStore{posts: []model.Post{{ID: 1}}, err: errors.New("db down")}
	svc := NewPostService(store, nil, nil)

	posts, err := svc.ListAll(context.Background())

	require.EqualError(t, err, "db down")
	assert.Nil(t, posts)
	assert.Equal(t, []string{"get_all"}, store.calls, "no retries")
}

func TestPostService_GetBySlug(t *testing.T) {
	post := model.Post{ID: 3, Slug: "abc"}
	svc := NewPostService(&fakeStore{lookup: model.Found(post)}, nil, nil)

	lookup, err := svc.GetBySlug(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, lookup.IsFound())
	assert.Equal(t, post, lookup.Post)

	svc = NewPostService(&fakeStore{lookup: model.NotFound()}, nil, nil)
	lookup, err = svc.GetBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, lookup.IsFound())

	svc = NewPostService(&fakeStore{lookup: model.Found(post), err: errors.New("boom")}, nil, nil)
	lookup, err = svc.GetBySlug(context.Background(), "abc")
	require.Error(t, err)
	assert.False(t, lookup.IsFound(), "a failed lookup never reports a post")
}

func TestPostService_AddNotifies(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewPostService(store, notifier, nil)

	err := svc.Add(context.Background(), model.Post{Slug: "new", Title: "New"})

	require.NoError(t, err)
	require.Len(t, notifier.posts, 1)
	assert.Equal(t, int64(10), notifier.posts[0].ID, "notification carries the stored id")
	assert.Equal(t, "new", notifier.posts[0].Slug)
}

func TestPostService_AddSucceedsWhenNotificationFails(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("redis down")}
	svc := NewPostService(&fakeStore{}, notifier, nil)

	err := svc.Add(context.Background(), model.Post{Slug: "new", Title: "New"})

	assert.NoError(t, err)
	assert.Len(t, notifier.posts, 1)
}

func TestPostService_AddFailureSkipsNotification(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewPostService(&fakeStore{err: errors.New("duplicate")}, notifier, nil)

	err := svc.Add(context.Background(), model.Post{Slug: "dup"})

	require.EqualError(t, err, "duplicate")
	assert.Empty(t, notifier.posts)
}

func TestPostService_UpdateAndDelete(t *testing.T) {
	store := &fakeStore{}
	svc := NewPostService(store, nil, nil)

	require.NoError(t, svc.Update(context.Background(), model.Post{ID: 5, Slug: "s", Title: "T"}))
	require.NotNil(t, store.updated)
	assert.Equal(t, int64(5), store.updated.ID)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, int64(7), store.deleted)

	store.err = errors.New("post 7: post not found")
	assert.Error(t, svc.Delete(context.Background(), 7))
}
