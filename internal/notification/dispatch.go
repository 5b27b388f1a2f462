package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/lithammer/shortuuid/v4"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/event"
	"github.com/rs/zerolog/log"
)

type DispatchParams struct {
	RecipientID   string
	RecipientRole db.UserRole
	Title         string
	Message       string
}

func (arg DispatchParams) validate() error {
	if strings.TrimSpace(arg.RecipientID) == "" {
		return fmt.Errorf("%w: recipient id is required", ErrValidation)
	}
	if arg.RecipientRole != db.UserRoleUser && arg.RecipientRole != db.UserRoleProvider {
		return fmt.Errorf("%w: unknown recipient role %q", ErrValidation, arg.RecipientRole)
	}
	if strings.TrimSpace(arg.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(arg.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	return nil
}

// DispatchResult records the outcome of one fan-out. The durable write is
// not part of it: dispatch has already failed before any channel runs if
// the write did not go through.
type DispatchResult struct {
	Notification db.Notification
	PushErr      error
	RealtimeErr  error
}

// Dispatch durably records the notification, then fans it out to push and
// realtime. Only the durable write can fail the dispatch: once the row
// exists the caller gets it back, and channel failures are logged only.
func (s *Service) Dispatch(ctx context.Context, arg DispatchParams) (db.Notification, error) {
	if err := arg.validate(); err != nil {
		return db.Notification{}, err
	}

	stored, err := s.store.CreateNotification(ctx, db.CreateNotificationParams{
		RecipientID:   arg.RecipientID,
		RecipientRole: arg.RecipientRole,
		Title:         arg.Title,
		Message:       arg.Message,
	})
	if err != nil {
		return db.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	// Invalidate before reporting success so the dispatching client can
	// immediately read its own write through any read model.
	scope := Scope{RecipientID: stored.RecipientID, Role: stored.RecipientRole}
	if err := s.cache.Invalidate(ctx, scope); err != nil {
		log.Warn().Err(err).Str("recipient_id", scope.RecipientID).Msg("failed to invalidate notification cache")
	}

	go s.fanOut(stored)

	return stored, nil
}

// fanOut attempts both secondary channels concurrently. Each attempt is
// bounded by the channel timeout and isolated from the other; the detached
// context keeps deliveries alive after the dispatch request returns. The
// push outcome travels through a buffered channel so an overrunning sender
// never races the timeout branch.
func (s *Service) fanOut(n db.Notification) DispatchResult {
	traceID := shortuuid.New()
	result := DispatchResult{Notification: n}

	ctx, cancel := context.WithTimeout(context.Background(), s.channelTimeout)
	defer cancel()

	pushErr := make(chan error, 1)
	go func() {
		pushErr <- s.push.Send(ctx, n.RecipientID, n.RecipientRole, n.Title, n.Message)
	}()

	result.RealtimeErr = s.events.Broadcast(event.Event{
		Topic: event.RecipientTopic(n.RecipientID, string(n.RecipientRole)),
		Type:  event.EventTypeNotificationCreated,
		Data:  n,
	})

	select {
	case err := <-pushErr:
		result.PushErr = err
	case <-ctx.Done():
		result.PushErr = ctx.Err()
	}

	if result.PushErr != nil {
		channelErr := &ChannelError{Channel: "push", Err: result.PushErr}
		log.Error().Err(channelErr).Str("trace_id", traceID).Str("notification_id", n.ID.String()).Msg("push delivery failed")
	}
	if result.RealtimeErr != nil {
		channelErr := &ChannelError{Channel: "realtime", Err: result.RealtimeErr}
		log.Error().Err(channelErr).Str("trace_id", traceID).Str("notification_id", n.ID.String()).Msg("realtime delivery failed")
	}

	return result
}
