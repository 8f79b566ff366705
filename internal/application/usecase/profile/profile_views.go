package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
)

type ProfileViewsUseCase struct {
	profileRepo profile.Repository
	views       profile.ViewCounter
}

func NewProfileViewsUseCase(repo profile.Repository, views profile.ViewCounter) *ProfileViewsUseCase {
	return &ProfileViewsUseCase{profileRepo: repo, views: views}
}

type ProfileViewsInput struct {
	ID uuid.UUID
}

type ProfileViewsOutput struct {
	ProfileID uuid.UUID
	Views     int64
}

func (uc *ProfileViewsUseCase) Execute(ctx context.Context, input ProfileViewsInput) (*ProfileViewsOutput, error) {
	// 404 for unknown ids rather than a zero counter.
	if _, err := uc.profileRepo.FindByID(ctx, input.ID); err != nil {
		return nil, err
	}

	views, err := uc.views.Views(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &ProfileViewsOutput{ProfileID: input.ID, Views: views}, nil
}
