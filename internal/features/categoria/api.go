package categoria

import (
	"homestock/internal/config"
	"homestock/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CategoriaApi struct {
	controller *CategoriaController
	config     *config.Config
}

func NewCategoriaApi(controller *CategoriaController, config *config.Config) *CategoriaApi {
	return &CategoriaApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers category routes.
func (h *CategoriaApi) Setup(app *fiber.App) {
	categorias := app.Group("/api/v1/categorias")

	categorias.Get("/", h.controller.ListarCategorias)

	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	categorias.Post("/", auth, h.controller.CrearCategoria)
	categorias.Delete("/:nombre", auth, h.controller.EliminarCategoria)
}
