package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"editorial/internal/auth"
	"editorial/internal/domain"
	"editorial/internal/domain/models"
	"editorial/internal/domain/services"
)

// memoryUserRepo is an in-memory UserRepository for service tests.
type memoryUserRepo struct {
	nextID int64
	byID   map[int64]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{nextID: 1, byID: map[int64]*models.User{}}
}

func (r *memoryUserRepo) EnsureSchema(ctx context.Context) error { return nil }

func (r *memoryUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return &domain.ConflictError{Message: "Este email já está cadastrado."}
		}
	}
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.byID[user.ID] = &stored
	return nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func newTestAuthService(t *testing.T) (services.AuthService, *memoryUserRepo, *auth.TokenService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := auth.NewTokenService("test-secret", logger)
	if err != nil {
		t.Fatal(err)
	}
	repo := newMemoryUserRepo()
	return NewAuthService(repo, tokens, logger), repo, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, tokens := newTestAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &services.RegisterRequest{
		Email: "Editor@Elite.com",
		Senha: "senha123",
		Nome:  "Editor Elite",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if reg.User.Email != "editor@elite.com" {
		t.Errorf("email should be lowercased, got %q", reg.User.Email)
	}
	if claims, err := tokens.VerifyToken(reg.Token); err != nil || claims.ID != reg.User.ID {
		t.Errorf("registration token should verify for the new user: %v", err)
	}

	login, err := svc.Login(ctx, &services.LoginRequest{Email: "editor@elite.com", Senha: "senha123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login resolved a different user: %d vs %d", login.User.ID, reg.User.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *services.RegisterRequest
	}{
		{"missing email", &services.RegisterRequest{Senha: "senha123"}},
		{"invalid email", &services.RegisterRequest{Email: "not-an-email", Senha: "senha123"}},
		{"short password", &services.RegisterRequest{Email: "a@b.co", Senha: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tt.req); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("want ErrValidation, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	req := &services.RegisterRequest{Email: "a@b.co", Senha: "senha123"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("want conflict, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &services.RegisterRequest{Email: "a@b.co", Senha: "senha123"}); err != nil {
		t.Fatal(err)
	}

	wrongPassword := &services.LoginRequest{Email: "a@b.co", Senha: "errada1"}
	unknownEmail := &services.LoginRequest{Email: "ninguem@b.co", Senha: "senha123"}

	_, errPassword := svc.Login(ctx, wrongPassword)
	_, errEmail := svc.Login(ctx, unknownEmail)

	if !errors.Is(errPassword, domain.ErrUnauthorized) || !errors.Is(errEmail, domain.ErrUnauthorized) {
		t.Errorf("both failures must be ErrUnauthorized: %v, %v", errPassword, errEmail)
	}
}

func TestVerifyDeletedUser(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &services.RegisterRequest{Email: "a@b.co", Senha: "senha123"})
	if err != nil {
		t.Fatal(err)
	}

	delete(repo.byID, reg.User.ID)

	if _, err := svc.Verify(ctx, &models.Claims{ID: reg.User.ID, Email: "a@b.co"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}
