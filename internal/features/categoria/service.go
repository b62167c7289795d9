package categoria

import (
	"context"
	"errors"

	"homestock/internal/common/apperror"
	"homestock/internal/common/models"
	"homestock/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type CategoriaService interface {
	CrearCategoria(ctx context.Context, nombre, descripcion string) (*models.Categoria, error)
	ListarCategorias(ctx context.Context) ([]models.Categoria, error)
	EliminarCategoria(ctx context.Context, nombre string) error
}

type CategoriaServiceImpl struct {
	Repo CategoriaRepository
}

func NewCategoriaService(repo CategoriaRepository) CategoriaService {
	return &CategoriaServiceImpl{Repo: repo}
}

func (s *CategoriaServiceImpl) CrearCategoria(ctx context.Context, nombre, descripcion string) (*models.Categoria, error) {
	nombreNormalizado := utils.NormalizarNombre(nombre)
	if nombreNormalizado == "" {
		return nil, apperror.BadRequest("el nombre de la categoría es obligatorio")
	}

	_, err := s.Repo.FindByNombre(ctx, nombreNormalizado)
	switch {
	case err == nil:
		return nil, apperror.BadRequest("ya existe una categoría con ese nombre")
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	categoria := &models.Categoria{
		Nombre:      nombreNormalizado,
		Descripcion: descripcion,
	}

	if err := s.Repo.Create(ctx, categoria); err != nil {
		return nil, err
	}

	return categoria, nil
}

func (s *CategoriaServiceImpl) ListarCategorias(ctx context.Context) ([]models.Categoria, error) {
	return s.Repo.FindAll(ctx)
}

func (s *CategoriaServiceImpl) EliminarCategoria(ctx context.Context, nombre string) error {
	nombreNormalizado := utils.NormalizarNombre(nombre)

	if _, err := s.Repo.FindByNombre(ctx, nombreNormalizado); err != nil {
		return apperror.NotFound("no existe una categoría con ese nombre")
	}

	return s.Repo.DeleteByNombre(ctx, nombreNormalizado)
}
