package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/blog-posts/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks  []*asynq.Task
	err    error
	closed bool
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: "default", Type: task.Type()}, nil
}

func (f *fakeEnqueuer) Close() error {
	f.closed = true
	return nil
}

type sentMail struct {
	to, slug, title string
	id              int64
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendPostAddedEmail(to string, id int64, slug, title string) error {
	f.sent = append(f.sent, sentMail{to: to, id: id, slug: slug, title: title})
	return f.err
}

func newTestJobService(enqueuer Enqueuer, mailer PostAddedMailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{
		client:      enqueuer,
		mailer:      mailer,
		notifyEmail: "editor@example.com",
		logger:      &logger,
	}
}

func TestNewPostAddedTask(t *testing.T) {
	task, err := NewPostAddedTask(model.Post{ID: 3, Slug: "hello", Title: "Hello", Body: "not in payload"})
	require.NoError(t, err)

	assert.Equal(t, TaskPostAdded, task.Type())

	var payload PostAddedPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, PostAddedPayload{ID: 3, Slug: "hello", Title: "Hello"}, payload)
}

func TestEnqueuePostAdded(t *testing.T) {
	enqueuer := &fakeEnqueuer{}
	j := newTestJobService(enqueuer, &fakeMailer{})

	require.NoError(t, j.EnqueuePostAdded(context.Background(), model.Post{ID: 1, Slug: "a", Title: "A"}))
	require.Len(t, enqueuer.tasks, 1)
	assert.Equal(t, TaskPostAdded, enqueuer.tasks[0].Type())

	enqueuer.err = errors.New("redis: connection refused")
	err := j.EnqueuePostAdded(context.Background(), model.Post{ID: 2})
	assert.ErrorContains(t, err, "failed to enqueue post added task")
}

func TestHandlePostAddedTask(t *testing.T) {
	mailer := &fakeMailer{}
	j := newTestJobService(&fakeEnqueuer{}, mailer)

	task, err := NewPostAddedTask(model.Post{ID: 5, Slug: "five", Title: "Five"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, j.handlePostAddedTask(ctx, task))

	assert.Equal(t, []sentMail{{to: "editor@example.com", id: 5, slug: "five", title: "Five"}}, mailer.sent)
}

func TestHandlePostAddedTask_MailerFailureRetries(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("resend down")}
	j := newTestJobService(&fakeEnqueuer{}, mailer)

	task, err := NewPostAddedTask(model.Post{ID: 5, Slug: "five", Title: "Five"})
	require.NoError(t, err)

	err = j.handlePostAddedTask(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandlePostAddedTask_BadPayloadSkipsRetry(t *testing.T) {
	mailer := &fakeMailer{}
	j := newTestJobService(&fakeEnqueuer{}, mailer)

	err := j.handlePostAddedTask(context.Background(), asynq.NewTask(TaskPostAdded, []byte("{")))

	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.Empty(t, mailer.sent)
}

func TestStop_ClosesClient(t *testing.T) {
	enqueuer := &fakeEnqueuer{}
	j := newTestJobService(enqueuer, &fakeMailer{})

	j.Stop()
	assert.True(t, enqueuer.closed)
}
