package services

import (
	"context"
	"errors"
	"testing"

	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
	"github.com/zerocycle/zerocycle-admin-backend/internal/config"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*AuthService, *memAdminRepo) {
	t.Helper()
	repo := newMemAdminRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Upsert(context.Background(), &models.AdminUser{
		Name:     "Admin",
		Email:    "admin@zerocycle.id",
		Password: string(hash),
	}); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600
	return NewAuthService(repo, cfg), repo
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@zerocycle.id",
		Password: "rahasia123",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.Admin.Password != "" {
		t.Fatal("password hash must not leave the service")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@zerocycle.id",
		Password: "salah",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@zerocycle.id",
		Password: "rahasia123",
	})
	// Unknown email and wrong password must be indistinguishable.
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginAfterPasswordRotation(t *testing.T) {
	svc, repo := newAuthFixture(t)

	// Re-running the seed upserts by email and replaces the hash.
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-baru"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Upsert(context.Background(), &models.AdminUser{
		Name:     "Admin",
		Email:    "admin@zerocycle.id",
		Password: string(hash),
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@zerocycle.id",
		Password: "rahasia123",
	}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("old password: got %v, want ErrInvalidCredentials", err)
	}

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@zerocycle.id",
		Password: "rahasia-baru",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
}
