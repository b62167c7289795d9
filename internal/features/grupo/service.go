package grupo

import (
	"context"
	"errors"
	"time"

	"homestock/internal/common/apperror"
	"homestock/internal/common/models"
	"homestock/internal/features/user"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type GrupoService interface {
	CrearGrupo(ctx context.Context, nombre, descripcion, creadorUsername string) (*GrupoFamiliarDTO, error)
	EliminarGrupo(ctx context.Context, grupoID, solicitanteID string) error
	AgregarMiembro(ctx context.Context, grupoID, username, solicitanteID string) (*GrupoFamiliarDTO, error)
	EliminarMiembro(ctx context.Context, grupoID, username, solicitanteID string) (*GrupoFamiliarDTO, error)
	GrupoDelUsuario(ctx context.Context, userID string) (string, error)
}

type GrupoServiceImpl struct {
	Repo     GrupoRepository
	UserRepo user.UserRepository
	Logger   *zap.Logger
}

func NewGrupoService(repo GrupoRepository, userRepo user.UserRepository, logger *zap.Logger) GrupoService {
	return &GrupoServiceImpl{
		Repo:     repo,
		UserRepo: userRepo,
		Logger:   logger,
	}
}

func (s *GrupoServiceImpl) CrearGrupo(ctx context.Context, nombre, descripcion, creadorUsername string) (*GrupoFamiliarDTO, error) {
	if nombre == "" {
		return nil, apperror.BadRequest("el nombre del grupo es obligatorio")
	}

	_, err := s.Repo.FindByNombre(ctx, nombre)
	switch {
	case err == nil:
		return nil, apperror.BadRequest("ya existe un grupo con ese nombre")
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	creador, err := s.UserRepo.FindByUsername(ctx, creadorUsername)
	if err != nil {
		return nil, apperror.NotFound("usuario no encontrado")
	}
	creadorID := creador.ID.Hex()

	// Membership uniqueness is enforced by scanning every group's member
	// list; there is no userId->groupId index.
	enGrupo, err := s.usuarioPerteneceAAlgunGrupo(ctx, creadorID, "")
	if err != nil {
		return nil, err
	}
	if enGrupo {
		return nil, apperror.BadRequest("el usuario ya pertenece a un grupo familiar")
	}

	grupo := &models.GrupoFamiliar{
		Nombre:        nombre,
		Descripcion:   descripcion,
		FechaCreacion: time.Now(),
		CreadorID:     creadorID,
		Miembros: []models.MiembroInfo{{
			ID:       creadorID,
			Username: creador.Username,
			Email:    creador.Email,
		}},
	}

	if err := s.Repo.Create(ctx, grupo); err != nil {
		return nil, err
	}

	s.Logger.Info("grupo familiar creado",
		zap.String("grupoId", grupo.ID.Hex()),
		zap.String("username", creadorUsername))

	return toDTO(grupo), nil
}

func (s *GrupoServiceImpl) EliminarGrupo(ctx context.Context, grupoID, solicitanteID string) error {
	grupo, err := s.Repo.FindByID(ctx, grupoID)
	if err != nil {
		return apperror.NotFound("grupo no encontrado")
	}

	if grupo.CreadorID != solicitanteID {
		return apperror.Forbidden("solo el creador del grupo puede eliminarlo")
	}

	// Canonical delete only: lugares and listas that reference this group
	// by id keep their dangling grupoFamiliarId.
	return s.Repo.Delete(ctx, grupoID)
}

func (s *GrupoServiceImpl) AgregarMiembro(ctx context.Context, grupoID, username, solicitanteID string) (*GrupoFamiliarDTO, error) {
	grupo, err := s.Repo.FindByID(ctx, grupoID)
	if err != nil {
		return nil, apperror.NotFound("grupo no encontrado")
	}

	if !grupo.EsMiembro(solicitanteID) {
		return nil, apperror.Forbidden("no tienes permisos para agregar miembros a este grupo")
	}

	usuario, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperror.NotFound("usuario no encontrado")
	}
	usuarioID := usuario.ID.Hex()

	if grupo.EsMiembro(usuarioID) {
		return nil, apperror.BadRequest("el usuario ya es miembro de este grupo")
	}

	enOtroGrupo, err := s.usuarioPerteneceAAlgunGrupo(ctx, usuarioID, grupoID)
	if err != nil {
		return nil, err
	}
	if enOtroGrupo {
		return nil, apperror.BadRequest("el usuario ya pertenece a otro grupo familiar")
	}

	grupo.Miembros = append(grupo.Miembros, models.MiembroInfo{
		ID:       usuarioID,
		Username: usuario.Username,
		Email:    usuario.Email,
	})

	if err := s.Repo.Update(ctx, grupo); err != nil {
		return nil, err
	}

	return toDTO(grupo), nil
}

func (s *GrupoServiceImpl) EliminarMiembro(ctx context.Context, grupoID, username, solicitanteID string) (*GrupoFamiliarDTO, error) {
	grupo, err := s.Repo.FindByID(ctx, grupoID)
	if err != nil {
		return nil, apperror.NotFound("grupo no encontrado")
	}

	if !grupo.EsMiembro(solicitanteID) {
		return nil, apperror.Forbidden("no tienes permisos para eliminar miembros de este grupo")
	}

	usuario, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperror.NotFound("usuario no encontrado")
	}
	usuarioID := usuario.ID.Hex()

	if !grupo.EsMiembro(usuarioID) {
		return nil, apperror.BadRequest("el usuario no es miembro de este grupo")
	}

	// The creator never leaves through this path; the group can only be
	// disbanded via EliminarGrupo.
	if grupo.CreadorID == usuarioID {
		return nil, apperror.BadRequest("no se puede eliminar al creador del grupo")
	}

	miembros := grupo.Miembros[:0]
	for _, m := range grupo.Miembros {
		if m.ID != usuarioID {
			miembros = append(miembros, m)
		}
	}
	grupo.Miembros = miembros

	if err := s.Repo.Update(ctx, grupo); err != nil {
		return nil, err
	}

	return toDTO(grupo), nil
}

// GrupoDelUsuario returns the id of the group the user belongs to.
func (s *GrupoServiceImpl) GrupoDelUsuario(ctx context.Context, userID string) (string, error) {
	grupos, err := s.Repo.FindAll(ctx)
	if err != nil {
		return "", err
	}

	for i := range grupos {
		if grupos[i].EsMiembro(userID) {
			return grupos[i].ID.Hex(), nil
		}
	}

	return "", apperror.NotFound("el usuario no pertenece a ningún grupo familiar")
}

// usuarioPerteneceAAlgunGrupo scans all groups for userID, skipping
// excludeGrupoID when set.
func (s *GrupoServiceImpl) usuarioPerteneceAAlgunGrupo(ctx context.Context, userID, excludeGrupoID string) (bool, error) {
	grupos, err := s.Repo.FindAll(ctx)
	if err != nil {
		return false, err
	}

	for i := range grupos {
		if excludeGrupoID != "" && grupos[i].ID.Hex() == excludeGrupoID {
			continue
		}
		if grupos[i].EsMiembro(userID) {
			return true, nil
		}
	}

	return false, nil
}
