package notificacion

import (
	"homestock/internal/common/apperror"

	"github.com/gofiber/fiber/v2"
)

type NotificacionController struct {
	Service NotificacionService
}

func NewNotificacionController(service NotificacionService) *NotificacionController {
	return &NotificacionController{
		Service: service,
	}
}

// NoLeidas godoc
// @Summary      List unread notifications, newest first
// @Tags         notificaciones
// @Router       /api/v1/notificaciones [get]
func (c *NotificacionController) NoLeidas(ctx *fiber.Ctx) error {
	notificaciones, err := c.Service.NoLeidas(ctx.UserContext())
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(notificaciones)
}

// MarcarLeida godoc
// @Summary      Mark one notification as read
// @Tags         notificaciones
// @Router       /api/v1/notificaciones/{id}/leer [put]
func (c *NotificacionController) MarcarLeida(ctx *fiber.Ctx) error {
	if err := c.Service.MarcarComoLeida(ctx.UserContext(), ctx.Params("id")); err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// MarcarTodasLeidas godoc
// @Summary      Mark every unread notification as read
// @Tags         notificaciones
// @Router       /api/v1/notificaciones/leer-todas [put]
func (c *NotificacionController) MarcarTodasLeidas(ctx *fiber.Ctx) error {
	if err := c.Service.MarcarTodasComoLeidas(ctx.UserContext()); err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
