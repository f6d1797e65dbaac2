package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
)

func seedUsers(t *testing.T, repo *stubUserRepo) {
	t.Helper()
	ctx := context.Background()
	for _, u := range []*domain.User{
		{Email: "a@x.com", FirstName: "A", Role: domain.RoleUser, PasswordHash: "h1"},
		{Email: "b@x.com", FirstName: "B", Role: domain.RoleUser, PasswordHash: "h2"},
		{Email: "boss@djanguicore.com", FirstName: "Boss", Role: domain.RoleAdmin, PasswordHash: "h3"},
	} {
		if _, err := repo.Create(ctx, u); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestUserService_GetUsers(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	users, err := svc.GetUsers(context.Background())
	if err != nil {
		t.Fatalf("get users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
}

func TestUserService_GetUserByID(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	view, err := svc.GetUserByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if view.Email != "a@x.com" {
		t.Fatalf("unexpected user %+v", view)
	}

	if _, err := svc.GetUserByID(context.Background(), "nope"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_GetUsersByRole(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	admins, err := svc.GetUsersByRole(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("by role: %v", err)
	}
	if len(admins) != 1 || admins[0].Email != "boss@djanguicore.com" {
		t.Fatalf("unexpected admins %+v", admins)
	}
}

func TestUserService_LoadPrincipal(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	p, err := svc.LoadPrincipal(context.Background(), "b@x.com")
	if err != nil {
		t.Fatalf("load principal: %v", err)
	}
	if p.Email != "b@x.com" {
		t.Fatalf("unexpected principal %+v", p)
	}

	if _, err := svc.LoadPrincipal(context.Background(), "ghost@x.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
