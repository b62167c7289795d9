package listacompra

import (
	"context"
	"time"

	"homestock/internal/common/apperror"
	"homestock/internal/common/models"
	"homestock/internal/features/grupo"

	"go.uber.org/zap"
)

type ListaCompraService interface {
	CrearLista(ctx context.Context, lista *models.ListaCompra, userID string) (*models.ListaCompra, error)
	ListasPorGrupo(ctx context.Context, grupoFamiliarID string) ([]models.ListaCompra, error)
	ListaPorID(ctx context.Context, id string) (*models.ListaCompra, error)
	EliminarLista(ctx context.Context, id string) error
	MarcarProductoComprado(ctx context.Context, listaID, nombreProducto string, comprado bool) (*models.ListaCompra, error)
	AgregarProductoLista(ctx context.Context, listaID string, producto models.ProductoLista) (*models.ListaCompra, error)
	EliminarProductoLista(ctx context.Context, listaID, nombreProducto string) (*models.ListaCompra, error)
}

type ListaCompraServiceImpl struct {
	Repo         ListaCompraRepository
	GrupoRepo    grupo.GrupoRepository
	GrupoService grupo.GrupoService
	Logger       *zap.Logger
}

func NewListaCompraService(repo ListaCompraRepository, grupoRepo grupo.GrupoRepository, grupoService grupo.GrupoService, logger *zap.Logger) ListaCompraService {
	return &ListaCompraServiceImpl{
		Repo:         repo,
		GrupoRepo:    grupoRepo,
		GrupoService: grupoService,
		Logger:       logger,
	}
}

func (s *ListaCompraServiceImpl) CrearLista(ctx context.Context, lista *models.ListaCompra, userID string) (*models.ListaCompra, error) {
	if lista.Nombre == "" {
		return nil, apperror.BadRequest("el nombre de la lista es obligatorio")
	}

	// The list always lands in the caller's group.
	grupoFamiliarID, err := s.GrupoService.GrupoDelUsuario(ctx, userID)
	if err != nil {
		return nil, err
	}

	lista.GrupoFamiliarID = grupoFamiliarID
	lista.FechaCreacion = time.Now()
	if lista.ProductosLista == nil {
		lista.ProductosLista = []models.ProductoLista{}
	}

	if err := s.Repo.Create(ctx, lista); err != nil {
		return nil, err
	}

	g, err := s.GrupoRepo.FindByID(ctx, grupoFamiliarID)
	if err == nil {
		g.ListasCompra = append(g.ListasCompra, *lista)
		if err := s.GrupoRepo.Update(ctx, g); err != nil {
			s.Logger.Warn("no se pudo propagar la lista al grupo",
				zap.String("listaId", lista.ID.Hex()),
				zap.String("grupoId", grupoFamiliarID),
				zap.Error(err))
		}
	}

	return lista, nil
}

func (s *ListaCompraServiceImpl) ListasPorGrupo(ctx context.Context, grupoFamiliarID string) ([]models.ListaCompra, error) {
	return s.Repo.FindByGrupoFamiliarID(ctx, grupoFamiliarID)
}

func (s *ListaCompraServiceImpl) ListaPorID(ctx context.Context, id string) (*models.ListaCompra, error) {
	lista, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("lista no encontrada")
	}
	return lista, nil
}

func (s *ListaCompraServiceImpl) EliminarLista(ctx context.Context, id string) error {
	lista, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return apperror.NotFound("lista no encontrada")
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	if lista.GrupoFamiliarID != "" {
		g, err := s.GrupoRepo.FindByID(ctx, lista.GrupoFamiliarID)
		if err == nil {
			listas := g.ListasCompra[:0]
			for _, l := range g.ListasCompra {
				if l.ID != lista.ID {
					listas = append(listas, l)
				}
			}
			g.ListasCompra = listas
			if err := s.GrupoRepo.Update(ctx, g); err != nil {
				s.Logger.Warn("no se pudo quitar la lista del grupo",
					zap.String("listaId", id),
					zap.String("grupoId", lista.GrupoFamiliarID),
					zap.Error(err))
			}
		}
	}

	return nil
}

func (s *ListaCompraServiceImpl) MarcarProductoComprado(ctx context.Context, listaID, nombreProducto string, comprado bool) (*models.ListaCompra, error) {
	lista, err := s.Repo.FindByID(ctx, listaID)
	if err != nil {
		return nil, apperror.NotFound("lista no encontrada")
	}

	// Marking an already-purchased line again is a no-op, not an error.
	for i := range lista.ProductosLista {
		if lista.ProductosLista[i].Nombre == nombreProducto {
			lista.ProductosLista[i].Comprado = comprado
			break
		}
	}

	if err := s.Repo.Update(ctx, lista); err != nil {
		return nil, err
	}

	s.actualizarListaEnGrupo(ctx, lista)
	return lista, nil
}

func (s *ListaCompraServiceImpl) AgregarProductoLista(ctx context.Context, listaID string, producto models.ProductoLista) (*models.ListaCompra, error) {
	lista, err := s.Repo.FindByID(ctx, listaID)
	if err != nil {
		return nil, apperror.NotFound("lista no encontrada")
	}

	lista.ProductosLista = append(lista.ProductosLista, producto)

	if err := s.Repo.Update(ctx, lista); err != nil {
		return nil, err
	}

	s.actualizarListaEnGrupo(ctx, lista)
	return lista, nil
}

func (s *ListaCompraServiceImpl) EliminarProductoLista(ctx context.Context, listaID, nombreProducto string) (*models.ListaCompra, error) {
	lista, err := s.Repo.FindByID(ctx, listaID)
	if err != nil {
		return nil, apperror.NotFound("lista no encontrada")
	}

	productos := lista.ProductosLista[:0]
	for _, p := range lista.ProductosLista {
		if p.Nombre != nombreProducto {
			productos = append(productos, p)
		}
	}
	lista.ProductosLista = productos

	if err := s.Repo.Update(ctx, lista); err != nil {
		return nil, err
	}

	s.actualizarListaEnGrupo(ctx, lista)
	return lista, nil
}

// actualizarListaEnGrupo locate-and-replaces the snapshot copy inside the
// owning group's listasCompra array.
func (s *ListaCompraServiceImpl) actualizarListaEnGrupo(ctx context.Context, lista *models.ListaCompra) {
	if lista.GrupoFamiliarID == "" {
		return
	}

	g, err := s.GrupoRepo.FindByID(ctx, lista.GrupoFamiliarID)
	if err != nil {
		return
	}

	for i := range g.ListasCompra {
		if g.ListasCompra[i].ID == lista.ID {
			g.ListasCompra[i] = *lista
			if err := s.GrupoRepo.Update(ctx, g); err != nil {
				s.Logger.Warn("no se pudo sincronizar la lista en el grupo",
					zap.String("listaId", lista.ID.Hex()),
					zap.String("grupoId", lista.GrupoFamiliarID),
					zap.Error(err))
			}
			break
		}
	}
}
