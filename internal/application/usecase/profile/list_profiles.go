package profile

import (
	"context"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
)

type ListProfilesUseCase struct {
	profileRepo profile.Repository
}

func NewListProfilesUseCase(repo profile.Repository) *ListProfilesUseCase {
	return &ListProfilesUseCase{profileRepo: repo}
}

type ListProfilesOutput struct {
	Profiles []*profile.Profile
}

func (uc *ListProfilesUseCase) Execute(ctx context.Context) (*ListProfilesOutput, error) {
	profiles, err := uc.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListProfilesOutput{Profiles: profiles}, nil
}
