package ports

import (
	"context"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
)

// SkillRepository defines persistence for skill records.
type SkillRepository interface {
	Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	FindAll(ctx context.Context) ([]*domain.Skill, error)
}

// SkillService exposes skill CRUD to the HTTP layer.
type SkillService interface {
	CreateSkill(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	GetSkill(ctx context.Context, id string) (*domain.Skill, error)
	GetSkills(ctx context.Context) ([]*domain.Skill, error)
}
