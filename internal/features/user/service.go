package user

import (
	"context"
	"errors"

	"homestock/internal/common/apperror"
	"homestock/internal/common/models"
	"homestock/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LoginResponse is the signin payload: the signed token plus the identity
// the frontend shows without parsing the JWT.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserService interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
	Signin(ctx context.Context, username, password string) (*LoginResponse, error)
	UserInfo(ctx context.Context, id string) (map[string]string, error)
}

type UserServiceImpl struct {
	UserRepo UserRepository
	Logger   *zap.Logger
}

func NewUserService(userRepo UserRepository, logger *zap.Logger) UserService {
	return &UserServiceImpl{
		UserRepo: userRepo,
		Logger:   logger,
	}
}

func (s *UserServiceImpl) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperror.BadRequest("usuario y contraseña son obligatorios")
	}

	_, err := s.UserRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, apperror.BadRequest("el nombre de usuario ya está en uso")
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Roles:    []string{"ROLE_USER"},
	}

	if err := s.UserRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	s.Logger.Info("usuario registrado", zap.String("username", username))
	return newUser, nil
}

func (s *UserServiceImpl) Signin(ctx context.Context, username, password string) (*LoginResponse, error) {
	usr, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Unauthorized("credenciales inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("credenciales inválidas")
	}

	token, err := utils.GenerateToken(usr.ID.Hex(), usr.Username, usr.Email, usr.Roles)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:    token,
		Username: usr.Username,
		Email:    usr.Email,
	}, nil
}

func (s *UserServiceImpl) UserInfo(ctx context.Context, id string) (map[string]string, error) {
	usr, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("usuario no encontrado")
	}

	return map[string]string{
		"id":       usr.ID.Hex(),
		"username": usr.Username,
		"email":    usr.Email,
	}, nil
}
