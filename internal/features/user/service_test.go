package user

import (
	"context"
	"testing"

	"homestock/internal/common/apperror"
	"homestock/internal/common/models"
	"homestock/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &u, nil
}

func newTestUserService() *UserServiceImpl {
	return &UserServiceImpl{
		UserRepo: newFakeUserRepo(),
		Logger:   zap.NewNop(),
	}
}

func TestSignupHasheaLaContrasena(t *testing.T) {
	service := newTestUserService()
	ctx := context.Background()

	usr, err := service.Signup(ctx, "ana", "ana@example.com", "secreta")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if usr.Password == "secreta" {
		t.Error("expected password stored hashed")
	}
	if len(usr.Roles) != 1 || usr.Roles[0] != "ROLE_USER" {
		t.Errorf("expected default role ROLE_USER, got %+v", usr.Roles)
	}
}

func TestSignupUsernameDuplicado(t *testing.T) {
	service := newTestUserService()
	ctx := context.Background()

	if _, err := service.Signup(ctx, "ana", "ana@example.com", "secreta"); err != nil {
		t.Fatal(err)
	}

	_, err := service.Signup(ctx, "ana", "otra@example.com", "otra")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if code := apperror.StatusCode(err); code != 400 {
		t.Errorf("expected status 400, got %d", code)
	}
}

func TestSigninEmiteTokenValido(t *testing.T) {
	service := newTestUserService()
	ctx := context.Background()

	usr, err := service.Signup(ctx, "ana", "ana@example.com", "secreta")
	if err != nil {
		t.Fatal(err)
	}

	resp, err := service.Signin(ctx, "ana", "secreta")
	if err != nil {
		t.Fatalf("Signin: %v", err)
	}
	if resp.Username != "ana" || resp.Email != "ana@example.com" {
		t.Errorf("unexpected response identity: %+v", resp)
	}

	claims, err := utils.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != usr.ID.Hex() {
		t.Errorf("expected claim id %s, got %s", usr.ID.Hex(), claims.UserID)
	}
	if claims.Issuer != "HomeStock" {
		t.Errorf("expected issuer HomeStock, got %s", claims.Issuer)
	}
}

func TestSigninCredencialesInvalidas(t *testing.T) {
	service := newTestUserService()
	ctx := context.Background()

	if _, err := service.Signup(ctx, "ana", "ana@example.com", "secreta"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "ana", "incorrecta"},
		{"unknown user", "nadie", "secreta"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Signin(ctx, tc.username, tc.password)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if code := apperror.StatusCode(err); code != 401 {
				t.Errorf("expected status 401, got %d", code)
			}
		})
	}
}
