package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

// PayloadUnreadDigest identifies one recipient scope with pending unread
// notifications at the time the digest job ran.
type PayloadUnreadDigest struct {
	RecipientID   string
	RecipientRole db.UserRole
	UnreadCount   int64
}

func (distributor *RedisTaskDistributor) DistributeTaskUnreadDigest(
	ctx context.Context,
	payload *PayloadUnreadDigest,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskUnreadDigest, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

// ProcessTaskUnreadDigest nudges the recipient about unread notifications
// through the push channel. The durable rows already exist, so this task
// only talks to the push provider.
func (processor *RedisTaskProcessor) ProcessTaskUnreadDigest(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadUnreadDigest
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	message := fmt.Sprintf("You have %d unread notifications waiting for you.", payload.UnreadCount)
	if payload.UnreadCount == 1 {
		message = "You have 1 unread notification waiting for you."
	}

	err := processor.push.Send(ctx, payload.RecipientID, payload.RecipientRole, "Servio", message)
	if err != nil {
		return fmt.Errorf("failed to send digest push: %w", err)
	}

	log.Info().Str("type", task.Type()).Str("recipient_id", payload.RecipientID).
		Int64("unread_count", payload.UnreadCount).Msg("task processed")

	return nil
}
