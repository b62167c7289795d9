package listacompra

import (
	"homestock/internal/common/apperror"
	"homestock/internal/common/models"
	"homestock/internal/features/user"
	"homestock/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ListaCompraController struct {
	Service  ListaCompraService
	UserRepo user.UserRepository
}

func NewListaCompraController(service ListaCompraService, userRepo user.UserRepository) *ListaCompraController {
	return &ListaCompraController{
		Service:  service,
		UserRepo: userRepo,
	}
}

type marcarCompradoRequest struct {
	Comprado bool `json:"comprado"`
}

// CrearLista godoc
// @Summary      Create a shopping list in the caller's group
// @Tags         listas-compra
// @Router       /api/v1/listas-compra [post]
func (c *ListaCompraController) CrearLista(ctx *fiber.Ctx) error {
	var lista models.ListaCompra
	if err := ctx.BodyParser(&lista); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	claims := middleware.Claims(ctx)
	if claims == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "token requerido",
		})
	}

	usuario, err := c.UserRepo.FindByUsername(ctx.UserContext(), claims.Username)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "usuario no encontrado",
		})
	}

	creada, err := c.Service.CrearLista(ctx.UserContext(), &lista, usuario.ID.Hex())
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(creada)
}

// ListasPorGrupo godoc
// @Summary      List the shopping lists of a group
// @Tags         listas-compra
// @Router       /api/v1/listas-compra/grupo/{grupoFamiliarId} [get]
func (c *ListaCompraController) ListasPorGrupo(ctx *fiber.Ctx) error {
	listas, err := c.Service.ListasPorGrupo(ctx.UserContext(), ctx.Params("grupoFamiliarId"))
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(listas)
}

// ListaPorID godoc
// @Summary      Fetch one shopping list
// @Tags         listas-compra
// @Router       /api/v1/listas-compra/{id} [get]
func (c *ListaCompraController) ListaPorID(ctx *fiber.Ctx) error {
	lista, err := c.Service.ListaPorID(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(lista)
}

// EliminarLista godoc
// @Summary      Delete a shopping list
// @Tags         listas-compra
// @Router       /api/v1/listas-compra/{id} [delete]
func (c *ListaCompraController) EliminarLista(ctx *fiber.Ctx) error {
	if err := c.Service.EliminarLista(ctx.UserContext(), ctx.Params("id")); err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// AgregarProducto godoc
// @Summary      Append a line item to a list
// @Tags         listas-compra
// @Router       /api/v1/listas-compra/{listaId}/productos [post]
func (c *ListaCompraController) AgregarProducto(ctx *fiber.Ctx) error {
	var producto models.ProductoLista
	if err := ctx.BodyParser(&producto); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	lista, err := c.Service.AgregarProductoLista(ctx.UserContext(), ctx.Params("listaId"), producto)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(lista)
}

// EliminarProducto godoc
// @Summary      Remove a line item by product name
// @Tags         listas-compra
// @Router       /api/v1/listas-compra/{listaId}/productos/{nombreProducto} [delete]
func (c *ListaCompraController) EliminarProducto(ctx *fiber.Ctx) error {
	lista, err := c.Service.EliminarProductoLista(ctx.UserContext(), ctx.Params("listaId"), ctx.Params("nombreProducto"))
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(lista)
}

// MarcarComprado godoc
// @Summary      Set the purchased flag of a line item
// @Tags         listas-compra
// @Router       /api/v1/listas-compra/{listaId}/productos/{nombreProducto}/comprado [patch]
func (c *ListaCompraController) MarcarComprado(ctx *fiber.Ctx) error {
	var req marcarCompradoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	lista, err := c.Service.MarcarProductoComprado(ctx.UserContext(), ctx.Params("listaId"), ctx.Params("nombreProducto"), req.Comprado)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(lista)
}
