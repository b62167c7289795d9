package lugar

import (
	"homestock/internal/common/apperror"

	"github.com/gofiber/fiber/v2"
)

type LugarController struct {
	Service LugarService
}

func NewLugarController(service LugarService) *LugarController {
	return &LugarController{Service: service}
}

type crearLugarRequest struct {
	Nombre          string `json:"nombre"`
	Descripcion     string `json:"descripcion"`
	GrupoFamiliarID string `json:"grupoFamiliarId"`
	UserID          string `json:"userId"`
}

// CrearLugar godoc
// @Summary      Create a storage location inside a group
// @Tags         lugares
// @Router       /api/v1/lugares [post]
func (c *LugarController) CrearLugar(ctx *fiber.Ctx) error {
	var req crearLugarRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	lugar, err := c.Service.CrearLugar(ctx.UserContext(), req.Nombre, req.Descripcion, req.GrupoFamiliarID, req.UserID)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(lugar)
}

// EliminarLugar godoc
// @Summary      Delete a place; its products stay in their own collection
// @Tags         lugares
// @Router       /api/v1/lugares/{lugarId} [delete]
func (c *LugarController) EliminarLugar(ctx *fiber.Ctx) error {
	if err := c.Service.EliminarLugar(ctx.UserContext(), ctx.Params("lugarId")); err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// LugaresPorGrupo godoc
// @Summary      List the places of a group
// @Tags         lugares
// @Router       /api/v1/lugares/grupo/{grupoFamiliarId} [get]
func (c *LugarController) LugaresPorGrupo(ctx *fiber.Ctx) error {
	lugares, err := c.Service.LugaresPorGrupo(ctx.UserContext(), ctx.Params("grupoFamiliarId"))
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(lugares)
}

// LugarPorID godoc
// @Summary      Fetch one place
// @Tags         lugares
// @Router       /api/v1/lugares/{lugarId} [get]
func (c *LugarController) LugarPorID(ctx *fiber.Ctx) error {
	lugar, err := c.Service.LugarPorID(ctx.UserContext(), ctx.Params("lugarId"))
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(lugar)
}

// ProductosDeLugar godoc
// @Summary      Embedded product snapshots of a place
// @Tags         lugares
// @Router       /api/v1/lugares/{lugarId}/productos [get]
func (c *LugarController) ProductosDeLugar(ctx *fiber.Ctx) error {
	productos, err := c.Service.ProductosDeLugar(ctx.UserContext(), ctx.Params("lugarId"))
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(productos)
}
