package event

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

const eventBufferSize = 256

type SSEServer struct {
	clients map[string]map[chan Event]bool
	events  chan Event
	mu      sync.Mutex
}

func NewSSEServer() EventSender {
	return &SSEServer{
		clients: make(map[string]map[chan Event]bool),
		events:  make(chan Event, eventBufferSize),
	}
}

// Register subscribes a client channel to a topic.
func (s *SSEServer) Register(topic string, client chan Event) {
	s.mu.Lock()
	if _, ok := s.clients[topic]; !ok {
		s.clients[topic] = make(map[chan Event]bool)
	}
	s.clients[topic][client] = true
	total := len(s.clients[topic])
	s.mu.Unlock()
	log.Info().Msgf("New client registered to topic %s. Total clients: %d", topic, total)
}

// Unregister removes a client channel from a topic. The channel is not
// closed here: the dispatch loop may still hold a reference to it.
func (s *SSEServer) Unregister(topic string, client chan Event) {
	s.mu.Lock()
	if clients, ok := s.clients[topic]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(s.clients, topic)
		}
	}
	remaining := len(s.clients[topic])
	s.mu.Unlock()
	log.Info().Msgf("Client unregistered from topic %s. Remaining clients: %d", topic, remaining)
}

// Broadcast queues an event for delivery. It never blocks: when the buffer
// is full the event is dropped and an error is returned.
func (s *SSEServer) Broadcast(event Event) error {
	select {
	case s.events <- event:
		return nil
	default:
		return fmt.Errorf("event buffer full, dropped %s event for topic %s", event.Type, event.Topic)
	}
}

// Run drains the event queue and delivers each event to the subscribers of
// its topic. A slow client misses the event instead of stalling the loop.
func (s *SSEServer) Run() {
	for event := range s.events {
		s.mu.Lock()
		subscribers := make([]chan Event, 0, len(s.clients[event.Topic]))
		for client := range s.clients[event.Topic] {
			subscribers = append(subscribers, client)
		}
		s.mu.Unlock()

		for _, client := range subscribers {
			select {
			case client <- event:
			default:
				log.Warn().Str("topic", event.Topic).Str("type", event.Type).Msg("client channel full, event skipped")
			}
		}
	}
}
