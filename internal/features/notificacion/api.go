package notificacion

import (
	"homestock/internal/config"
	"homestock/internal/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type NotificacionApi struct {
	controller *NotificacionController
	hub        *Hub
	config     *config.Config
}

func NewNotificacionApi(controller *NotificacionController, hub *Hub, config *config.Config) *NotificacionApi {
	return &NotificacionApi{
		controller: controller,
		hub:        hub,
		config:     config,
	}
}

// Setup registers notification routes plus the live websocket feed.
func (h *NotificacionApi) Setup(app *fiber.App) {
	notificaciones := app.Group("/api/v1/notificaciones")

	notificaciones.Get("/", h.controller.NoLeidas)

	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	notificaciones.Put("/leer-todas", auth, h.controller.MarcarTodasLeidas)
	notificaciones.Put("/:id/leer", auth, h.controller.MarcarLeida)

	app.Get("/api/ws/notificaciones", websocket.New(h.handleWebSocket))
}

// handleWebSocket keeps the connection registered until the client goes away.
// Incoming messages are discarded; the socket is push only.
func (h *NotificacionApi) handleWebSocket(c *websocket.Conn) {
	h.hub.Register(c)
	defer h.hub.Unregister(c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
