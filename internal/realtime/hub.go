package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"ngobooks-backend/internal/logger"
)

const (
	// Named events consumers subscribe to. Delivery is best effort; a
	// dashboard that misses one reaches the same state by polling.
	EventStatsUpdate = "stats-update"
	EventNewDonation = "new-donation"
	EventNewExpense  = "new-expense"

	sendQueueSize = 32
	writeTimeout  = 5 * time.Second
)

// Event is the wire envelope broadcast to connected dashboards.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data,omitempty"`
}

// Hub fans events out to websocket subscribers. Fire-and-forget: a slow or
// closed subscriber is dropped, never waited on.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// HandleWS upgrades the request and keeps the connection subscribed until
// the client goes away.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Dashboards are served from a different origin than the API.
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		logger.Warn("websocket accept failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendQueueSize)}
	h.add(c)
	defer h.remove(c)

	go c.writeLoop()

	// Read loop exists only to notice the close; inbound messages are ignored.
	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

// Broadcast sends a named event to every subscriber. Subscribers with a full
// queue miss the event rather than block the caller.
func (h *Hub) Broadcast(name string, data any) {
	msg, err := json.Marshal(Event{Name: name, Data: data})
	if err != nil {
		logger.Error("failed to marshal event", "event", name, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
}

// SubscriberCount reports connected clients (used by tests and logging).
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	close(c.send)
	c.conn.Close(websocket.StatusNormalClosure, "")
}

func (c *client) writeLoop() {
	for msg := range c.send {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := c.conn.Write(ctx, websocket.MessageText, msg)
		cancel()
		if err != nil {
			return
		}
	}
}
