package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
	"github.com/djanguicore/portfolio-backend/internal/core/ports"
)

const (
	skillsCacheKey = "portfolio:skills"
	listCacheTTL   = 10 * time.Minute
)

// SkillService implements skill CRUD with a read-through cache on the
// public list, which the portfolio frontend hits on every page load.
type SkillService struct {
	repo  ports.SkillRepository
	cache ports.PortfolioCache
	log   zerolog.Logger
}

func NewSkillService(repo ports.SkillRepository, cache ports.PortfolioCache, log zerolog.Logger) *SkillService {
	return &SkillService{repo: repo, cache: cache, log: log}
}

func (s *SkillService) CreateSkill(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	created, err := s.repo.Create(ctx, skill)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, skillsCacheKey); err != nil {
		s.log.Warn().Err(err).Msg("skill cache invalidation failed")
	}
	s.log.Info().Str("skill", created.SkillName).Str("category", created.Category).Msg("skill created")
	return created, nil
}

func (s *SkillService) GetSkill(ctx context.Context, id string) (*domain.Skill, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SkillService) GetSkills(ctx context.Context) ([]*domain.Skill, error) {
	if raw, ok, err := s.cache.Get(ctx, skillsCacheKey); err != nil {
		s.log.Warn().Err(err).Msg("skill cache read failed, falling back to repository")
	} else if ok {
		var skills []*domain.Skill
		if err := json.Unmarshal(raw, &skills); err == nil {
			return skills, nil
		}
		// Corrupt entry: drop it and reload from the repository.
		_ = s.cache.Invalidate(ctx, skillsCacheKey)
	}

	skills, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(skills); err == nil {
		if err := s.cache.Set(ctx, skillsCacheKey, raw, listCacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("skill cache write failed")
		}
	}
	return skills, nil
}
