package lugar

import (
	"homestock/internal/config"
	"homestock/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LugarApi struct {
	controller *LugarController
	config     *config.Config
}

func NewLugarApi(controller *LugarController, config *config.Config) *LugarApi {
	return &LugarApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers place routes. Browsing is public; mutations need a token.
func (h *LugarApi) Setup(app *fiber.App) {
	lugares := app.Group("/api/v1/lugares")

	lugares.Get("/grupo/:grupoFamiliarId", h.controller.LugaresPorGrupo)
	lugares.Get("/:lugarId/productos", h.controller.ProductosDeLugar)
	lugares.Get("/:lugarId", h.controller.LugarPorID)

	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	lugares.Post("/", auth, h.controller.CrearLugar)
	lugares.Delete("/:lugarId", auth, h.controller.EliminarLugar)
}
