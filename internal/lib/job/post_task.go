package job

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/blog-posts/internal/model"
	"github.com/hibiken/asynq"
)

const (
	// TaskPostAdded is the job type name stored in Redis.
	// Asynq uses task type strings to route to handlers.
	TaskPostAdded = "post:added"
)

// PostAddedPayload is the JSON payload of the post-added task.
type PostAddedPayload struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// NewPostAddedTask constructs an Asynq task announcing post.
//
// Task options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("default"): send into the "default" queue
//   - Timeout(30s): kill the task if handler runs longer than 30 seconds
func NewPostAddedTask(post model.Post) (*asynq.Task, error) {
	payload, err := json.Marshal(PostAddedPayload{
		ID:    post.ID,
		Slug:  post.Slug,
		Title: post.Title,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPostAdded,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
