package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
	"github.com/djanguicore/portfolio-backend/internal/core/ports"
)

// UserService implements the admin user queries and the principal lookup
// used by the request authenticator.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// LoadPrincipal satisfies ports.PrincipalLookup.
func (s *UserService) LoadPrincipal(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) GetUsers(ctx context.Context) ([]domain.UserView, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return views(users), nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.UserView, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.UserView{}, err
	}
	return user.View(), nil
}

func (s *UserService) GetUsersByRole(ctx context.Context, role domain.Role) ([]domain.UserView, error) {
	users, err := s.repo.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return views(users), nil
}

func views(users []*domain.User) []domain.UserView {
	out := make([]domain.UserView, 0, len(users))
	for _, u := range users {
		out = append(out, u.View())
	}
	return out
}
