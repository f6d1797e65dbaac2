package ports

import (
	"context"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
type UserRepository interface {
	// FindByEmail returns the first user with the given email, or
	// domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindAllByEmail returns every user row sharing the email. An empty
	// slice means no match; it is not an error.
	FindAllByEmail(ctx context.Context, email string) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// PrincipalLookup resolves a token subject to the user it identifies. It is
// the only capability the request authenticator needs from the user layer.
type PrincipalLookup interface {
	LoadPrincipal(ctx context.Context, email string) (*domain.User, error)
}
