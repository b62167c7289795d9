package lugar

import (
	"context"
	"time"

	"homestock/internal/common/apperror"
	"homestock/internal/common/models"
	"homestock/internal/features/grupo"

	"go.uber.org/zap"
)

type LugarService interface {
	CrearLugar(ctx context.Context, nombre, descripcion, grupoFamiliarID, userID string) (*models.Lugar, error)
	EliminarLugar(ctx context.Context, lugarID string) error
	LugaresPorGrupo(ctx context.Context, grupoFamiliarID string) ([]models.Lugar, error)
	LugarPorID(ctx context.Context, lugarID string) (*models.Lugar, error)
	ProductosDeLugar(ctx context.Context, lugarID string) ([]models.Producto, error)
}

type LugarServiceImpl struct {
	Repo      LugarRepository
	GrupoRepo grupo.GrupoRepository
	Logger    *zap.Logger
}

func NewLugarService(repo LugarRepository, grupoRepo grupo.GrupoRepository, logger *zap.Logger) LugarService {
	return &LugarServiceImpl{
		Repo:      repo,
		GrupoRepo: grupoRepo,
		Logger:    logger,
	}
}

func (s *LugarServiceImpl) CrearLugar(ctx context.Context, nombre, descripcion, grupoFamiliarID, userID string) (*models.Lugar, error) {
	if nombre == "" {
		return nil, apperror.BadRequest("el nombre del lugar es obligatorio")
	}

	lugar := &models.Lugar{
		Nombre:          nombre,
		Descripcion:     descripcion,
		GrupoFamiliarID: grupoFamiliarID,
		CreadoPor:       userID,
		FechaCreacion:   time.Now(),
		Productos:       []models.Producto{},
	}

	if err := s.Repo.Create(ctx, lugar); err != nil {
		return nil, err
	}

	// Append a snapshot copy to the owning group. A missing group is
	// skipped, not an error; the canonical lugar is already committed.
	if grupoFamiliarID != "" {
		g, err := s.GrupoRepo.FindByID(ctx, grupoFamiliarID)
		if err == nil {
			g.Lugares = append(g.Lugares, *lugar)
			if err := s.GrupoRepo.Update(ctx, g); err != nil {
				s.Logger.Warn("no se pudo propagar el lugar al grupo",
					zap.String("lugarId", lugar.ID.Hex()),
					zap.String("grupoId", grupoFamiliarID),
					zap.Error(err))
			}
		}
	}

	return lugar, nil
}

func (s *LugarServiceImpl) EliminarLugar(ctx context.Context, lugarID string) error {
	// Read the canonical document first to learn its grupoFamiliarId.
	lugar, err := s.Repo.FindByID(ctx, lugarID)
	if err != nil {
		return apperror.NotFound("lugar no encontrado")
	}

	if err := s.Repo.Delete(ctx, lugarID); err != nil {
		return err
	}

	// Single-hop cleanup: remove the snapshot from that one group. The
	// productos embedded in the deleted lugar stay in their own
	// collection; deleting a place does not delete its products.
	if lugar.GrupoFamiliarID != "" {
		g, err := s.GrupoRepo.FindByID(ctx, lugar.GrupoFamiliarID)
		if err == nil {
			lugares := g.Lugares[:0]
			for _, l := range g.Lugares {
				if l.ID != lugar.ID {
					lugares = append(lugares, l)
				}
			}
			g.Lugares = lugares
			if err := s.GrupoRepo.Update(ctx, g); err != nil {
				s.Logger.Warn("no se pudo quitar el lugar del grupo",
					zap.String("lugarId", lugarID),
					zap.String("grupoId", lugar.GrupoFamiliarID),
					zap.Error(err))
			}
		}
	}

	return nil
}

func (s *LugarServiceImpl) LugaresPorGrupo(ctx context.Context, grupoFamiliarID string) ([]models.Lugar, error) {
	return s.Repo.FindByGrupoFamiliarID(ctx, grupoFamiliarID)
}

func (s *LugarServiceImpl) LugarPorID(ctx context.Context, lugarID string) (*models.Lugar, error) {
	lugar, err := s.Repo.FindByID(ctx, lugarID)
	if err != nil {
		return nil, apperror.NotFound("lugar no encontrado")
	}
	return lugar, nil
}

func (s *LugarServiceImpl) ProductosDeLugar(ctx context.Context, lugarID string) ([]models.Producto, error) {
	lugar, err := s.Repo.FindByID(ctx, lugarID)
	if err != nil {
		return nil, apperror.NotFound("lugar no encontrado")
	}
	return lugar.Productos, nil
}
