package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// PostAddedMailer sends the post-added email. *email.Client implements it.
type PostAddedMailer interface {
	SendPostAddedEmail(to string, id int64, slug, title string) error
}

// handlePostAddedTask processes the post-added task.
//
// Steps:
//   - Parse JSON payload from the Asynq task
//   - Send the notification email to the configured recipient
//   - Log success/failure
func (j *JobService) handlePostAddedTask(ctx context.Context, t *asynq.Task) error {
	var p PostAddedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A malformed payload will never succeed; skip retries.
		return fmt.Errorf("failed to unmarshal post added payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskPostAdded).
		Int64("post_id", p.ID).
		Str("slug", p.Slug).
		Msg("Processing post added task")

	if err := j.mailer.SendPostAddedEmail(j.notifyEmail, p.ID, p.Slug, p.Title); err != nil {
		j.logger.Error().
			Str("type", TaskPostAdded).
			Int64("post_id", p.ID).
			Err(err).
			Msg("Failed to send post added email")
		return err // returning err makes Asynq mark it failed and schedule retry
	}

	j.logger.Info().
		Str("type", TaskPostAdded).
		Int64("post_id", p.ID).
		Msg("Successfully sent post added email")

	return nil
}
