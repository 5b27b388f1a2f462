package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/event"
	"github.com/rs/zerolog/log"
)

// MarkRead marks one notification as read. It is idempotent: an already-read
// notification, or an id that does not exist inside the caller's scope, is a
// no-op success. Racing clients acknowledging the same notification must
// never see a failure, and ids outside the scope must not leak existence.
func (s *Service) MarkRead(ctx context.Context, scope Scope, id uuid.UUID) error {
	affected, err := s.store.MarkNotificationAsRead(ctx, db.MarkNotificationAsReadParams{
		ID:            id,
		RecipientID:   scope.RecipientID,
		RecipientRole: scope.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if affected == 0 {
		return nil
	}

	s.invalidateReadModels(ctx, scope, affected)
	return nil
}

// MarkAllRead marks every unread notification in the scope as read in one
// statement. Notifications created concurrently may or may not be included.
func (s *Service) MarkAllRead(ctx context.Context, scope Scope) error {
	affected, err := s.store.MarkAllNotificationsAsRead(ctx, db.MarkAllNotificationsAsReadParams{
		RecipientID:   scope.RecipientID,
		RecipientRole: scope.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	if affected == 0 {
		return nil
	}

	s.invalidateReadModels(ctx, scope, affected)
	return nil
}

// invalidateReadModels drops the scope's cached read models before the
// mutation reports success, and lets connected clients refresh their badge.
func (s *Service) invalidateReadModels(ctx context.Context, scope Scope, affected int64) {
	if err := s.cache.Invalidate(ctx, scope); err != nil {
		log.Warn().Err(err).Str("recipient_id", scope.RecipientID).Msg("failed to invalidate notification cache")
	}

	if err := s.events.Broadcast(event.Event{
		Topic: event.RecipientTopic(scope.RecipientID, string(scope.Role)),
		Type:  event.EventTypeNotificationsRead,
		Data:  map[string]int64{"read_count": affected},
	}); err != nil {
		log.Warn().Err(err).Str("recipient_id", scope.RecipientID).Msg("failed to broadcast read event")
	}
}
