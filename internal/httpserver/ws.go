package httpserver

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"shopspark/internal/domain"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans notifications out to a session's websocket connections. Delivery
// is best-effort; a dead connection is dropped on the next write.
type Hub struct {
	mu     sync.Mutex
	conns  map[string][]*websocket.Conn
	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{conns: make(map[string][]*websocket.Conn), logger: logger}
}

// Broadcast sends a notification to every connection of a session. The
// signature matches session.Notifier.
func (h *Hub) Broadcast(sessionID string, n domain.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.conns[sessionID]
	if len(conns) == 0 {
		return
	}
	alive := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteJSON(n); err != nil {
			conn.Close()
			continue
		}
		alive = append(alive, conn)
	}
	h.conns[sessionID] = alive
}

func (h *Hub) handle(c *gin.Context) {
	sess := currentSession(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[sess.ID] = append(h.conns[sess.ID], conn)
	h.mu.Unlock()

	// Keep the connection registered until the client disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	conns := h.conns[sess.ID]
	remaining := make([]*websocket.Conn, 0, len(conns))
	for _, other := range conns {
		if other != conn {
			remaining = append(remaining, other)
		}
	}
	if len(remaining) == 0 {
		delete(h.conns, sess.ID)
	} else {
		h.conns[sess.ID] = remaining
	}
	h.mu.Unlock()

	conn.Close()
}
