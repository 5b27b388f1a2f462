package notification

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
)

// PushSender delivers a mobile push notification. Delivery is at-most-once:
// the coordinator fires it after the durable write and only logs failures.
type PushSender interface {
	Send(ctx context.Context, recipientID string, role db.UserRole, title string, message string) error
}

// FCMSender sends through Firebase Cloud Messaging. Devices subscribe to a
// per-scope topic on login, so no device token bookkeeping is needed here.
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(ctx context.Context, firebaseApp *firebase.App) (*FCMSender, error) {
	client, err := firebaseApp.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging client: %w", err)
	}

	return &FCMSender{client: client}, nil
}

func (s *FCMSender) Send(ctx context.Context, recipientID string, role db.UserRole, title string, message string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Topic: fmt.Sprintf("recipient-%s-%s", recipientID, role),
		Notification: &messaging.Notification{
			Title: title,
			Body:  message,
		},
	})
	return err
}
