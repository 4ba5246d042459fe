package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/minproducer/kulana-cms/internal/domain/entities"
	"github.com/minproducer/kulana-cms/internal/infrastructure/config"
	"github.com/minproducer/kulana-cms/internal/infrastructure/logger"
	"github.com/minproducer/kulana-cms/internal/ports"
)

type memUserRepo struct {
	users map[string]*entities.User
}

func newMemUserRepo(users ...*entities.User) *memUserRepo {
	repo := &memUserRepo{users: map[string]*entities.User{}}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return repo
}

func (r *memUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:    "test-secret-key-for-auth-tests",
		ExpiresIn: time.Hour,
		Issuer:    "kulana-cms",
	}
}

func testUser(t *testing.T, username, password string, active bool) *entities.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &entities.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     active,
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	user := testUser(t, "admin", "secret", true)
	svc := NewAuthService(newMemUserRepo(user), testJWTConfig(), logger.NewNop())

	result, err := svc.Login(context.Background(), ports.LoginRequest{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.UserID != user.ID.String() || result.Username != "admin" {
		t.Fatalf("unexpected identity: %+v", result)
	}

	claims, err := svc.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != user.ID.String() || claims.Username != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejections(t *testing.T) {
	active := testUser(t, "admin", "secret", true)
	inactive := testUser(t, "retired", "secret", false)
	svc := NewAuthService(newMemUserRepo(active, inactive), testJWTConfig(), logger.NewNop())

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"unknown username", "ghost", "secret"},
		{"wrong password", "admin", "wrong"},
		{"inactive account", "retired", "secret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), ports.LoginRequest{Username: tc.username, Password: tc.password})
			if !errors.Is(err, entities.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	user := testUser(t, "admin", "secret", true)
	svc := NewAuthService(newMemUserRepo(user), testJWTConfig(), logger.NewNop())

	result, err := svc.Login(context.Background(), ports.LoginRequest{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateToken(result.Token + "x"); err == nil {
		t.Fatal("tampered token must not validate")
	}
	if _, err := svc.ValidateToken("not-a-jwt"); err == nil {
		t.Fatal("garbage token must not validate")
	}

	// Token signed under a different secret.
	other := NewAuthService(newMemUserRepo(user), config.JWTConfig{
		Secret:    "a-different-secret-entirely",
		ExpiresIn: time.Hour,
		Issuer:    "kulana-cms",
	}, logger.NewNop())
	otherResult, err := other.Login(context.Background(), ports.LoginRequest{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ValidateToken(otherResult.Token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	user := testUser(t, "admin", "secret", true)
	cfg := testJWTConfig()
	cfg.ExpiresIn = -time.Minute
	svc := NewAuthService(newMemUserRepo(user), cfg, logger.NewNop())

	result, err := svc.Login(context.Background(), ports.LoginRequest{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ValidateToken(result.Token); err == nil {
		t.Fatal("expired token must not validate")
	}
}
