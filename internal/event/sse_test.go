package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBroadcastDeliversToSubscribedTopic(t *testing.T) {
	server := NewSSEServer()
	go server.Run()

	topic := RecipientTopic("user-1", "user")
	client := make(chan Event, 8)
	server.Register(topic, client)
	defer server.Unregister(topic, client)

	err := server.Broadcast(Event{
		Topic: topic,
		Type:  EventTypeNotificationCreated,
		Data:  "payload",
	})
	require.NoError(t, err)

	select {
	case ev := <-client:
		require.Equal(t, EventTypeNotificationCreated, ev.Type)
		require.Equal(t, topic, ev.Topic)
		require.Equal(t, "payload", ev.Data)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestBroadcastSkipsOtherTopics(t *testing.T) {
	server := NewSSEServer()
	go server.Run()

	client := make(chan Event, 8)
	server.Register(RecipientTopic("user-1", "user"), client)
	defer server.Unregister(RecipientTopic("user-1", "user"), client)

	// Same recipient, different role: disjoint topic.
	err := server.Broadcast(Event{
		Topic: RecipientTopic("user-1", "provider"),
		Type:  EventTypeNotificationCreated,
	})
	require.NoError(t, err)

	select {
	case ev := <-client:
		t.Fatalf("unexpected event delivered: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	server := NewSSEServer()
	go server.Run()

	topic := RecipientTopic("user-1", "user")
	client := make(chan Event, 8)
	server.Register(topic, client)
	server.Unregister(topic, client)

	err := server.Broadcast(Event{Topic: topic, Type: EventTypeNotificationsRead})
	require.NoError(t, err)

	select {
	case ev := <-client:
		t.Fatalf("unexpected event delivered after unregister: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroadcastNeverBlocks(t *testing.T) {
	// No Run loop draining the queue: the buffer fills, and the overflowing
	// event is dropped with an error instead of blocking the caller.
	server := NewSSEServer()
	topic := RecipientTopic("user-1", "user")

	for i := 0; i < eventBufferSize; i++ {
		require.NoError(t, server.Broadcast(Event{Topic: topic, Type: EventTypeNotificationCreated}))
	}

	err := server.Broadcast(Event{Topic: topic, Type: EventTypeNotificationCreated})
	require.Error(t, err)
}
