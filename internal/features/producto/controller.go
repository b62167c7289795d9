package producto

import (
	"time"

	"homestock/internal/common/apperror"

	"github.com/gofiber/fiber/v2"
)

type ProductoController struct {
	Service ProductoService
}

func NewProductoController(service ProductoService) *ProductoController {
	return &ProductoController{Service: service}
}

type crearProductoRequest struct {
	Nombre         string `json:"nombre"`
	Descripcion    string `json:"descripcion"`
	Cantidad       *int   `json:"cantidad"`
	CantidadMinima *int   `json:"cantidadMinima"`
	Expiracion     string `json:"expiracion"`
	LugarID        string `json:"lugarId"`
	NombreLugar    string `json:"nombreLugar"`
}

type asignarCategoriaRequest struct {
	Categoria string `json:"categoria"`
}

// ListarProductos godoc
// @Summary      List every product
// @Tags         productos
// @Router       /api/v1/productos [get]
func (c *ProductoController) ListarProductos(ctx *fiber.Ctx) error {
	productos, err := c.Service.ListarProductos(ctx.UserContext())
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(productos)
}

// ProductoPorNombre godoc
// @Summary      Fetch a product by name
// @Tags         productos
// @Router       /api/v1/productos/{nombre} [get]
func (c *ProductoController) ProductoPorNombre(ctx *fiber.Ctx) error {
	producto, err := c.Service.ProductoPorNombre(ctx.UserContext(), ctx.Params("nombre"))
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(producto)
}

// CrearProducto godoc
// @Summary      Create a product, optionally snapshotting it into a place
// @Tags         productos
// @Router       /api/v1/productos [post]
func (c *ProductoController) CrearProducto(ctx *fiber.Ctx) error {
	var req crearProductoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Nombre == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "el nombre es obligatorio",
		})
	}

	cantidad := 0
	if req.Cantidad != nil {
		cantidad = *req.Cantidad
	}
	cantidadMinima := 0
	if req.CantidadMinima != nil {
		cantidadMinima = *req.CantidadMinima
	}

	// expiracion arrives as dd-MM-yyyy
	var expiracion *time.Time
	if req.Expiracion != "" {
		parsed, err := time.Parse("02-01-2006", req.Expiracion)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "el formato de fecha dd-MM-yyyy es incorrecto",
			})
		}
		expiracion = &parsed
	}

	lugarID := req.LugarID
	if lugarID == "" {
		lugarID = req.NombreLugar
	}

	producto, err := c.Service.CrearProducto(ctx.UserContext(), req.Nombre, req.Descripcion, cantidad, cantidadMinima, expiracion, lugarID)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(producto)
}

// DecrementarOEliminar godoc
// @Summary      Decrement quantity, or delete once it reaches one
// @Tags         productos
// @Router       /api/v1/productos/{id} [delete]
func (c *ProductoController) DecrementarOEliminar(ctx *fiber.Ctx) error {
	if err := c.Service.DecrementarOEliminar(ctx.UserContext(), ctx.Params("id")); err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Producto eliminado correctamente",
	})
}

// AsignarCategoria godoc
// @Summary      Attach a category to a product and refresh its snapshots
// @Tags         productos
// @Router       /api/v1/productos/{id}/categoria [put]
func (c *ProductoController) AsignarCategoria(ctx *fiber.Ctx) error {
	var req asignarCategoriaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	producto, err := c.Service.AsignarCategoria(ctx.UserContext(), ctx.Params("id"), req.Categoria)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(producto)
}

// ExportarProductos godoc
// @Summary      Download the product inventory as an xlsx workbook
// @Tags         productos
// @Router       /api/v1/productos/export [get]
func (c *ProductoController) ExportarProductos(ctx *fiber.Ctx) error {
	data, filename, err := c.Service.ExportarProductos(ctx.UserContext())
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(data)
}
