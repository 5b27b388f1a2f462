package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// PayloadDispatchNotification contain all data of the task that we want to store in Redis.
type PayloadDispatchNotification struct {
	RecipientID   string
	RecipientRole db.UserRole
	Title         string
	Message       string
}

func (distributor *RedisTaskDistributor) DistributeTaskDispatchNotification(
	ctx context.Context,
	payload *PayloadDispatchNotification,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskDispatchNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskDispatchNotification(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadDispatchNotification
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	stored, err := processor.notificationService.Dispatch(ctx, notification.DispatchParams{
		RecipientID:   payload.RecipientID,
		RecipientRole: payload.RecipientRole,
		Title:         payload.Title,
		Message:       payload.Message,
	})
	if err != nil {
		// A bad payload will never become dispatchable, so retrying is pointless.
		if errors.Is(err, notification.ErrValidation) {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return err
	}

	log.Info().Str("type", task.Type()).Str("notification_id", stored.ID.String()).
		Str("recipient_id", stored.RecipientID).Msg("task processed")

	return nil
}
