package grupo

import (
	"homestock/internal/config"
	"homestock/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type GrupoApi struct {
	controller *GrupoController
	config     *config.Config
}

func NewGrupoApi(controller *GrupoController, config *config.Config) *GrupoApi {
	return &GrupoApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers group routes. Everything here needs a bearer token: the
// caller's identity comes from the token's username claim.
func (h *GrupoApi) Setup(app *fiber.App) {
	grupos := app.Group("/api/v1/grupos-familiares", middleware.AuthMiddleware(h.config.SkipAuth))

	grupos.Post("/", h.controller.CrearGrupo)
	grupos.Get("/mi-grupo", h.controller.MiGrupo)
	grupos.Delete("/:grupoId", h.controller.EliminarGrupo)
	grupos.Post("/:grupoId/miembros", h.controller.AgregarMiembro)
	grupos.Delete("/:grupoId/miembros/:username", h.controller.EliminarMiembro)
}
