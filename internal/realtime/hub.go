package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/linskybing/freelance-market/internal/domain/notification"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16
)

// Key identifies a connected account.
type Key struct {
	UserID uint
	Role   string
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans new notifications out to the recipient's open sockets.
type Hub struct {
	mu      sync.RWMutex
	clients map[Key]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[Key]map[*client]struct{})}
}

// Publish pushes n to every socket of its recipient. Slow sockets whose buffer
// is full miss the message; the notification is still persisted.
func (h *Hub) Publish(n *notification.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		slog.Error("marshal notification", "id", n.ID, "error", err)
		return
	}

	key := Key{UserID: n.RecipientID, Role: n.RecipientRole}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[key] {
		select {
		case c.send <- payload:
		default:
			slog.Warn("notification dropped, socket buffer full", "userId", key.UserID, "role", key.Role)
		}
	}
}

// Count returns the number of open sockets for key.
func (h *Hub) Count(key Key) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[key])
}

// Serve owns conn until the peer goes away.
func (h *Hub) Serve(conn *websocket.Conn, key Key) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(key, c)
	defer h.unregister(key, c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.readLoop(c)
	}()
	h.writeLoop(c, done)
}

func (h *Hub) register(key Key, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[key] == nil {
		h.clients[key] = make(map[*client]struct{})
	}
	h.clients[key][c] = struct{}{}
}

func (h *Hub) unregister(key Key, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[key], c)
	if len(h.clients[key]) == 0 {
		delete(h.clients, key)
	}
	c.conn.Close()
}

// readLoop discards client frames and keeps the pong deadline fresh.
func (h *Hub) readLoop(c *client) {
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("notification socket closed", "error", err)
			}
			return
		}
	}
}

func (h *Hub) writeLoop(c *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
