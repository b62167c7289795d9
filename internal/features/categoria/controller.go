package categoria

import (
	"homestock/internal/common/apperror"

	"github.com/gofiber/fiber/v2"
)

type CategoriaController struct {
	Service CategoriaService
}

func NewCategoriaController(service CategoriaService) *CategoriaController {
	return &CategoriaController{Service: service}
}

type crearCategoriaRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CrearCategoria godoc
// @Summary      Create a category; names are lowercased and trimmed
// @Tags         categorias
// @Router       /api/v1/categorias [post]
func (c *CategoriaController) CrearCategoria(ctx *fiber.Ctx) error {
	var req crearCategoriaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	categoria, err := c.Service.CrearCategoria(ctx.UserContext(), req.Nombre, req.Descripcion)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(categoria)
}

// ListarCategorias godoc
// @Summary      List all categories
// @Tags         categorias
// @Router       /api/v1/categorias [get]
func (c *CategoriaController) ListarCategorias(ctx *fiber.Ctx) error {
	categorias, err := c.Service.ListarCategorias(ctx.UserContext())
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(categorias)
}

// EliminarCategoria godoc
// @Summary      Delete a category by (normalized) name
// @Tags         categorias
// @Router       /api/v1/categorias/{nombre} [delete]
func (c *CategoriaController) EliminarCategoria(ctx *fiber.Ctx) error {
	if err := c.Service.EliminarCategoria(ctx.UserContext(), ctx.Params("nombre")); err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Categoría eliminada correctamente",
	})
}
