package ports

import (
	"context"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
)

// EducationRepository defines persistence for education records.
type EducationRepository interface {
	Create(ctx context.Context, edu *domain.Education) (*domain.Education, error)
	FindByID(ctx context.Context, id string) (*domain.Education, error)
	FindAll(ctx context.Context) ([]*domain.Education, error)
}

// EducationService exposes education CRUD to the HTTP layer.
type EducationService interface {
	CreateEducation(ctx context.Context, edu *domain.Education) (*domain.Education, error)
	GetEducation(ctx context.Context, id string) (*domain.Education, error)
	ListEducation(ctx context.Context) ([]*domain.Education, error)
}
