package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	db "github.com/minhnq/campushub-BE/internal/db/sqlc"
	"github.com/minhnq/campushub-BE/internal/mailer"
	"github.com/minhnq/campushub-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// PayloadSendNotificationEmail contain all data of the task that we want to store in Redis.
type PayloadSendNotificationEmail struct {
	RecipientID string
	Category    string
	Title       string
	Body        string
	OccurredAt  time.Time
}

func (distributor *RedisTaskDistributor) DistributeTaskSendNotificationEmail(
	ctx context.Context,
	payload *PayloadSendNotificationEmail,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotificationEmail, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

// EnqueueNotificationEmail implements notification.EmailQueue.
func (distributor *RedisTaskDistributor) EnqueueNotificationEmail(ctx context.Context, payload notification.EmailPayload) error {
	return distributor.DistributeTaskSendNotificationEmail(ctx, &PayloadSendNotificationEmail{
		RecipientID: payload.RecipientID,
		Category:    string(payload.Category),
		Title:       payload.Title,
		Body:        payload.Body,
		OccurredAt:  payload.OccurredAt,
	}, asynq.Queue(QueueDefault))
}

func (processor *RedisTaskProcessor) ProcessTaskSendNotificationEmail(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadSendNotificationEmail
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	email, err := processor.store.GetUserEmail(ctx, payload.RecipientID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			// No such user: retrying will never help.
			return fmt.Errorf("recipient %s not found: %w", payload.RecipientID, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to look up recipient email: %w", err)
	}

	err = processor.mailer.SendNotificationEmail(ctx, email, mailer.NotificationEmail{
		Category:   payload.Category,
		Title:      payload.Title,
		Body:       payload.Body,
		OccurredAt: payload.OccurredAt,
	})
	if err != nil {
		log.Error().Err(err).Str("recipient_id", payload.RecipientID).Msg("failed to send notification email")
		return err
	}

	log.Info().Str("type", task.Type()).Str("recipient_id", payload.RecipientID).
		Str("title", payload.Title).Msg("task processed")

	return nil
}
