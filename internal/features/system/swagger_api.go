package system

import (
	"homestock/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "homestock/docs"
)

type SwaggerApi struct{}

func NewSwaggerApi() api.Route {
	return &SwaggerApi{}
}

func (h *SwaggerApi) Setup(app *fiber.App) {
	app.Get("/swagger/*", swagger.HandlerDefault)
}
