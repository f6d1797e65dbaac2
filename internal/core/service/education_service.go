package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
	"github.com/djanguicore/portfolio-backend/internal/core/ports"
)

const educationCacheKey = "portfolio:education"

// EducationService implements education CRUD, mirroring SkillService's
// cached list read.
type EducationService struct {
	repo  ports.EducationRepository
	cache ports.PortfolioCache
	log   zerolog.Logger
}

func NewEducationService(repo ports.EducationRepository, cache ports.PortfolioCache, log zerolog.Logger) *EducationService {
	return &EducationService{repo: repo, cache: cache, log: log}
}

func (s *EducationService) CreateEducation(ctx context.Context, edu *domain.Education) (*domain.Education, error) {
	created, err := s.repo.Create(ctx, edu)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, educationCacheKey); err != nil {
		s.log.Warn().Err(err).Msg("education cache invalidation failed")
	}
	created.SplitCourses()
	return created, nil
}

func (s *EducationService) GetEducation(ctx context.Context, id string) (*domain.Education, error) {
	edu, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	edu.SplitCourses()
	return edu, nil
}

func (s *EducationService) ListEducation(ctx context.Context) ([]*domain.Education, error) {
	if raw, ok, err := s.cache.Get(ctx, educationCacheKey); err != nil {
		s.log.Warn().Err(err).Msg("education cache read failed, falling back to repository")
	} else if ok {
		var entries []*domain.Education
		if err := json.Unmarshal(raw, &entries); err == nil {
			return entries, nil
		}
		_ = s.cache.Invalidate(ctx, educationCacheKey)
	}

	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		e.SplitCourses()
	}

	if raw, err := json.Marshal(entries); err == nil {
		if err := s.cache.Set(ctx, educationCacheKey, raw, listCacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("education cache write failed")
		}
	}
	return entries, nil
}
