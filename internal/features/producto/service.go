package producto

import (
	"context"
	"time"

	"homestock/internal/common/apperror"
	"homestock/internal/common/models"
	"homestock/internal/features/categoria"
	"homestock/internal/features/grupo"
	"homestock/internal/features/lugar"
	"homestock/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProductoService interface {
	ListarProductos(ctx context.Context) ([]models.Producto, error)
	ProductoPorNombre(ctx context.Context, nombre string) (*models.Producto, error)
	CrearProducto(ctx context.Context, nombre, descripcion string, cantidad, cantidadMinima int, expiracion *time.Time, lugarID string) (*models.Producto, error)
	DecrementarOEliminar(ctx context.Context, id string) error
	AsignarCategoria(ctx context.Context, productoID, categoriaNombre string) (*models.Producto, error)
	ExportarProductos(ctx context.Context) ([]byte, string, error)
}

type ProductoServiceImpl struct {
	Repo          ProductoRepository
	LugarRepo     lugar.LugarRepository
	GrupoRepo     grupo.GrupoRepository
	CategoriaRepo categoria.CategoriaRepository
	Logger        *zap.Logger
}

func NewProductoService(
	repo ProductoRepository,
	lugarRepo lugar.LugarRepository,
	grupoRepo grupo.GrupoRepository,
	categoriaRepo categoria.CategoriaRepository,
	logger *zap.Logger,
) ProductoService {
	return &ProductoServiceImpl{
		Repo:          repo,
		LugarRepo:     lugarRepo,
		GrupoRepo:     grupoRepo,
		CategoriaRepo: categoriaRepo,
		Logger:        logger,
	}
}

func (s *ProductoServiceImpl) ListarProductos(ctx context.Context) ([]models.Producto, error) {
	return s.Repo.FindAll(ctx)
}

func (s *ProductoServiceImpl) ProductoPorNombre(ctx context.Context, nombre string) (*models.Producto, error) {
	producto, err := s.Repo.FindByNombre(ctx, nombre)
	if err != nil {
		return nil, apperror.NotFound("producto no encontrado")
	}
	return producto, nil
}

func (s *ProductoServiceImpl) CrearProducto(ctx context.Context, nombre, descripcion string, cantidad, cantidadMinima int, expiracion *time.Time, lugarID string) (*models.Producto, error) {
	if nombre == "" {
		return nil, apperror.BadRequest("el nombre es obligatorio")
	}
	if cantidad < 0 || cantidadMinima < 0 {
		return nil, apperror.BadRequest("las cantidades no pueden ser negativas")
	}
	if cantidad < cantidadMinima {
		return nil, apperror.BadRequest("la cantidad no puede ser menor a la cantidad mínima")
	}

	producto := &models.Producto{
		Nombre:         nombre,
		Descripcion:    descripcion,
		Cantidad:       cantidad,
		CantidadMinima: cantidadMinima,
		Expiracion:     expiracion,
	}

	if err := s.Repo.Create(ctx, producto); err != nil {
		return nil, err
	}

	// Two-hop fan-out: snapshot into the lugar, then refresh the lugar
	// snapshot inside its grupo. A missing lugar is skipped; the
	// canonical producto is already committed.
	if lugarID != "" {
		l, err := s.LugarRepo.FindByID(ctx, lugarID)
		if err == nil {
			l.Productos = append(l.Productos, *producto)
			if err := s.LugarRepo.Update(ctx, l); err != nil {
				s.Logger.Warn("no se pudo propagar el producto al lugar",
					zap.String("productoId", producto.ID.Hex()),
					zap.String("lugarId", lugarID),
					zap.Error(err))
			} else {
				s.sincronizarLugarEnGrupo(ctx, l)
			}
		}
	}

	return producto, nil
}

func (s *ProductoServiceImpl) DecrementarOEliminar(ctx context.Context, id string) error {
	producto, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return apperror.NotFound("producto no encontrado")
	}

	if producto.Cantidad > 1 {
		producto.Cantidad--
		if err := s.Repo.Update(ctx, producto); err != nil {
			return err
		}
		s.actualizarEnLugaresYGrupos(ctx, producto)
		return nil
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.eliminarDeLugaresYGrupos(ctx, producto.ID)
	return nil
}

func (s *ProductoServiceImpl) AsignarCategoria(ctx context.Context, productoID, categoriaNombre string) (*models.Producto, error) {
	producto, err := s.Repo.FindByID(ctx, productoID)
	if err != nil {
		return nil, apperror.BadRequest("no existe el producto especificado")
	}

	nombreNormalizado := utils.NormalizarNombre(categoriaNombre)
	cat, err := s.CategoriaRepo.FindByNombre(ctx, nombreNormalizado)
	if err != nil {
		return nil, apperror.BadRequest("no existe la categoría especificada")
	}

	producto.Categoria = cat
	if err := s.Repo.Update(ctx, producto); err != nil {
		return nil, err
	}

	s.actualizarEnLugaresYGrupos(ctx, producto)

	return producto, nil
}

// sincronizarLugarEnGrupo replaces the lugar snapshot embedded in its
// grupo with the freshly saved canonical document.
func (s *ProductoServiceImpl) sincronizarLugarEnGrupo(ctx context.Context, l *models.Lugar) {
	if l.GrupoFamiliarID == "" {
		return
	}

	g, err := s.GrupoRepo.FindByID(ctx, l.GrupoFamiliarID)
	if err != nil {
		return
	}

	for i := range g.Lugares {
		if g.Lugares[i].ID == l.ID {
			g.Lugares[i] = *l
			if err := s.GrupoRepo.Update(ctx, g); err != nil {
				s.Logger.Warn("no se pudo sincronizar el lugar en el grupo",
					zap.String("lugarId", l.ID.Hex()),
					zap.String("grupoId", l.GrupoFamiliarID),
					zap.Error(err))
			}
			break
		}
	}
}

// actualizarEnLugaresYGrupos rewrites the snapshot of producto inside
// every lugar that embeds it, then refreshes each touched lugar inside
// its grupo. A full scan of the lugares collection per mutation; a write
// that fails partway leaves the remaining copies stale.
func (s *ProductoServiceImpl) actualizarEnLugaresYGrupos(ctx context.Context, producto *models.Producto) {
	lugares, err := s.LugarRepo.FindAll(ctx)
	if err != nil {
		s.Logger.Warn("no se pudieron listar los lugares para propagar", zap.Error(err))
		return
	}

	for i := range lugares {
		l := &lugares[i]
		actualizado := false
		for j := range l.Productos {
			if l.Productos[j].ID == producto.ID {
				l.Productos[j] = *producto
				actualizado = true
				break
			}
		}
		if !actualizado {
			continue
		}

		if err := s.LugarRepo.Update(ctx, l); err != nil {
			s.Logger.Warn("no se pudo actualizar el producto en el lugar",
				zap.String("productoId", producto.ID.Hex()),
				zap.String("lugarId", l.ID.Hex()),
				zap.Error(err))
			continue
		}
		s.sincronizarLugarEnGrupo(ctx, l)
	}
}

// eliminarDeLugaresYGrupos removes the snapshot of a deleted producto from
// every lugar (and transitively every grupo) that holds it.
func (s *ProductoServiceImpl) eliminarDeLugaresYGrupos(ctx context.Context, productoID primitive.ObjectID) {
	lugares, err := s.LugarRepo.FindAll(ctx)
	if err != nil {
		s.Logger.Warn("no se pudieron listar los lugares para propagar", zap.Error(err))
		return
	}

	for i := range lugares {
		l := &lugares[i]
		productos := l.Productos[:0]
		eliminado := false
		for _, p := range l.Productos {
			if p.ID == productoID {
				eliminado = true
				continue
			}
			productos = append(productos, p)
		}
		if !eliminado {
			continue
		}

		l.Productos = productos
		if err := s.LugarRepo.Update(ctx, l); err != nil {
			s.Logger.Warn("no se pudo quitar el producto del lugar",
				zap.String("productoId", productoID.Hex()),
				zap.String("lugarId", l.ID.Hex()),
				zap.Error(err))
			continue
		}
		s.sincronizarLugarEnGrupo(ctx, l)
	}
}
