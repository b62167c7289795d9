package producto

import (
	"homestock/internal/config"
	"homestock/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProductoApi struct {
	controller *ProductoController
	config     *config.Config
}

func NewProductoApi(controller *ProductoController, config *config.Config) *ProductoApi {
	return &ProductoApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers product routes. Browsing is public; mutations need a token.
func (h *ProductoApi) Setup(app *fiber.App) {
	productos := app.Group("/api/v1/productos")

	productos.Get("/", h.controller.ListarProductos)
	productos.Get("/export", h.controller.ExportarProductos)
	productos.Get("/:nombre", h.controller.ProductoPorNombre)

	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	productos.Post("/", auth, h.controller.CrearProducto)
	productos.Delete("/:id", auth, h.controller.DecrementarOEliminar)
	productos.Put("/:id/categoria", auth, h.controller.AsignarCategoria)
}
