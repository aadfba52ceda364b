// internals/features/connect/hub/hub.go
package hub

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Conn is the write surface the hub needs from a websocket connection.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
}

// subscriber pairs a connection with the mutex serializing writes to it.
// fasthttp/websocket allows at most one writer on a connection at a time,
// and every request handler broadcasting to a channel is its own goroutine.
type subscriber struct {
	mu   sync.Mutex
	conn Conn
}

func (s *subscriber) send(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, payload)
}

// Hub fans messages out to websocket subscribers, grouped by channel ID.
// State is in-memory only; reconnecting clients re-fetch history over REST.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[Conn]*subscriber
}

func New() *Hub {
	return &Hub{channels: make(map[string]map[Conn]*subscriber)}
}

func (h *Hub) Subscribe(channelID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.channels[channelID]
	if !ok {
		subs = make(map[Conn]*subscriber)
		h.channels[channelID] = subs
	}
	subs[conn] = &subscriber{conn: conn}
}

func (h *Hub) Unsubscribe(channelID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.channels[channelID]; ok {
		delete(subs, conn)
		if len(subs) == 0 {
			delete(h.channels, channelID)
		}
	}
}

// Broadcast writes payload to every subscriber of the channel, one writer
// per connection at a time. Dead connections are dropped; the read loop
// handles their cleanup.
func (h *Hub) Broadcast(channelID string, payload []byte) {
	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.channels[channelID]))
	for _, s := range h.channels[channelID] {
		subs = append(subs, s)
	}
	h.mu.RUnlock()

	for _, s := range subs {
		if err := s.send(payload); err != nil {
			log.Printf("[ERROR] websocket write failed on channel %s: %v", channelID, err)
		}
	}
}

// SubscriberCount reports live subscribers for a channel.
func (h *Hub) SubscriberCount(channelID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channelID])
}
