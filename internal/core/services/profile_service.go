package services

import (
	"context"
	"errors"
	"time"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

type ProfileService struct {
	repo domain.ProfileRepository
}

func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

type UpsertProfileInput struct {
	UserID              string
	CurrentWeight       float64
	TargetWeight        float64
	DailyCaloriesTarget int
	DailyStepsGoal      int
	Version             int
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *ProfileService) Upsert(ctx context.Context, input UpsertProfileInput) (*domain.Profile, error) {
	existing, err := s.repo.GetByUserID(ctx, input.UserID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		profile, err := domain.NewProfile(input.UserID, input.CurrentWeight, input.TargetWeight, input.DailyCaloriesTarget, input.DailyStepsGoal)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Upsert(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}
	if err != nil {
		return nil, err
	}

	if input.Version > 0 && input.Version != existing.Version {
		return nil, domain.ErrProfileConflict
	}

	existing.CurrentWeight = input.CurrentWeight
	existing.TargetWeight = input.TargetWeight
	existing.DailyCaloriesTarget = input.DailyCaloriesTarget
	existing.DailyStepsGoal = input.DailyStepsGoal

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	existing.Version++
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}
