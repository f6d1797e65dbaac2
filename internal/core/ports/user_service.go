package ports

import (
	"context"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
)

// UserService exposes the admin-facing user queries.
type UserService interface {
	GetUsers(ctx context.Context) ([]domain.UserView, error)
	GetUserByID(ctx context.Context, id string) (domain.UserView, error)
	GetUsersByRole(ctx context.Context, role domain.Role) ([]domain.UserView, error)
}
