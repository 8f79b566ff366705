package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

type GetProfileUseCase struct {
	profileRepo profile.Repository
	views       profile.ViewCounter
	logger      logger.Logger
}

func NewGetProfileUseCase(repo profile.Repository, views profile.ViewCounter, log logger.Logger) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: repo,
		views:       views,
		logger:      log,
	}
}

type GetProfileInput struct {
	ID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.views.IncrementViews(ctx, p.ID); err != nil {
		uc.logger.Warn("failed to increment profile views",
			zap.String("profile_id", p.ID.String()), zap.Error(err))
	}

	return &GetProfileOutput{Profile: p}, nil
}
