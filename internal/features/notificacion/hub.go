package notificacion

import (
	"sync"

	"homestock/internal/common/models"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Hub fans out freshly created notifications to connected websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logger,
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Broadcast writes the notification as JSON to every connected client.
// Clients that fail to receive are dropped.
func (h *Hub) Broadcast(notificacion *models.Notificacion) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(notificacion); err != nil {
			h.logger.Warn("dropping websocket client", zap.Error(err))
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
