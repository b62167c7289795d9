package listacompra

import (
	"homestock/internal/config"
	"homestock/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ListaCompraApi struct {
	controller *ListaCompraController
	config     *config.Config
}

func NewListaCompraApi(controller *ListaCompraController, config *config.Config) *ListaCompraApi {
	return &ListaCompraApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers shopping list routes. Reads are public; mutations need a token.
func (h *ListaCompraApi) Setup(app *fiber.App) {
	listas := app.Group("/api/v1/listas-compra")

	listas.Get("/grupo/:grupoFamiliarId", h.controller.ListasPorGrupo)
	listas.Get("/:id", h.controller.ListaPorID)

	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	listas.Post("/", auth, h.controller.CrearLista)
	listas.Delete("/:id", auth, h.controller.EliminarLista)
	listas.Post("/:listaId/productos", auth, h.controller.AgregarProducto)
	listas.Delete("/:listaId/productos/:nombreProducto", auth, h.controller.EliminarProducto)
	listas.Patch("/:listaId/productos/:nombreProducto/comprado", auth, h.controller.MarcarComprado)
}
