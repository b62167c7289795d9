package grupo

import (
	"homestock/internal/common/apperror"
	"homestock/internal/features/user"
	"homestock/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type GrupoController struct {
	Service  GrupoService
	UserRepo user.UserRepository
}

func NewGrupoController(service GrupoService, userRepo user.UserRepository) *GrupoController {
	return &GrupoController{
		Service:  service,
		UserRepo: userRepo,
	}
}

// solicitanteID resolves the bearer token's username to its user id.
func (c *GrupoController) solicitanteID(ctx *fiber.Ctx) (string, error) {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return "", apperror.Unauthorized("token requerido")
	}

	usuario, err := c.UserRepo.FindByUsername(ctx.UserContext(), claims.Username)
	if err != nil {
		return "", apperror.Unauthorized("usuario no encontrado")
	}

	return usuario.ID.Hex(), nil
}

type crearGrupoRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type agregarMiembroRequest struct {
	Username string `json:"username"`
}

// CrearGrupo godoc
// @Summary      Create a family group with the caller as sole member
// @Tags         grupos-familiares
// @Router       /api/v1/grupos-familiares [post]
func (c *GrupoController) CrearGrupo(ctx *fiber.Ctx) error {
	var req crearGrupoRequest
	if err := ctx.BodyParser(&req); err != nil {
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

	dto, err := c.Service.CrearGrupo(ctx.UserContext(), req.Nombre, req.Descripcion, claims.Username)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto)
}

// EliminarGrupo godoc
// @Summary      Delete a group; only its creator may do so
// @Tags         grupos-familiares
// @Router       /api/v1/grupos-familiares/{grupoId} [delete]
func (c *GrupoController) EliminarGrupo(ctx *fiber.Ctx) error {
	solicitante, err := c.solicitanteID(ctx)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	if err := c.Service.EliminarGrupo(ctx.UserContext(), ctx.Params("grupoId"), solicitante); err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Grupo eliminado exitosamente",
	})
}

// AgregarMiembro godoc
// @Summary      Add a user (by username) to the group
// @Tags         grupos-familiares
// @Router       /api/v1/grupos-familiares/{grupoId}/miembros [post]
func (c *GrupoController) AgregarMiembro(ctx *fiber.Ctx) error {
	var req agregarMiembroRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	solicitante, err := c.solicitanteID(ctx)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	dto, err := c.Service.AgregarMiembro(ctx.UserContext(), ctx.Params("grupoId"), req.Username, solicitante)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(dto)
}

// EliminarMiembro godoc
// @Summary      Remove a member; the creator can never be removed
// @Tags         grupos-familiares
// @Router       /api/v1/grupos-familiares/{grupoId}/miembros/{username} [delete]
func (c *GrupoController) EliminarMiembro(ctx *fiber.Ctx) error {
	solicitante, err := c.solicitanteID(ctx)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	dto, err := c.Service.EliminarMiembro(ctx.UserContext(), ctx.Params("grupoId"), ctx.Params("username"), solicitante)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(dto)
}

// MiGrupo godoc
// @Summary      Id of the group the caller belongs to
// @Tags         grupos-familiares
// @Router       /api/v1/grupos-familiares/mi-grupo [get]
func (c *GrupoController) MiGrupo(ctx *fiber.Ctx) error {
	solicitante, err := c.solicitanteID(ctx)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	grupoID, err := c.Service.GrupoDelUsuario(ctx.UserContext(), solicitante)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"grupoId": grupoID,
	})
}
