package event

import (
	"fmt"
)

// Event represents a realtime event pushed to connected clients.
type Event struct {
	Topic string      // e.g. "recipient:user123:user"
	Type  string      // e.g. notification_created, notifications_read
	Data  interface{} // event payload, depends on the type
}

const (
	EventTypeNotificationCreated = "notification_created" // a new notification was stored
	EventTypeNotificationsRead   = "notifications_read"   // one or more notifications were marked read
)

// RecipientTopic builds the topic for a recipient scope. A recipient acting
// in two roles has two disjoint topics.
func RecipientTopic(recipientID string, role string) string {
	return fmt.Sprintf("recipient:%s:%s", recipientID, role)
}

// EventSender is the interface for the server that fans events out to clients.
// Broadcast is best-effort: it never blocks the caller and reports a dropped
// event as an error.
type EventSender interface {
	Register(topic string, client chan Event)
	Unregister(topic string, client chan Event)
	Broadcast(event Event) error
	Run()
}
