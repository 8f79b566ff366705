package query

import (
	"context"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/internal/domain/query"
	"github.com/namdhoang/portfolio-hub/pkg/apperror"
)

type SearchProfilesUseCase struct {
	queryRepo query.Repository
}

func NewSearchProfilesUseCase(repo query.Repository) *SearchProfilesUseCase {
	return &SearchProfilesUseCase{queryRepo: repo}
}

type SearchProfilesInput struct {
	Query string
}

type SearchProfilesOutput struct {
	Profiles []*profile.Profile
}

// Execute matches Query as a literal case-insensitive substring against
// name, email, skills, project titles and project descriptions. A single
// hit anywhere qualifies the whole profile.
func (uc *SearchProfilesUseCase) Execute(ctx context.Context, input SearchProfilesInput) (*SearchProfilesOutput, error) {
	if input.Query == "" {
		return nil, apperror.NewInvalidInput("query parameter 'q' is required", nil)
	}

	profiles, err := uc.queryRepo.SearchProfiles(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	return &SearchProfilesOutput{Profiles: profiles}, nil
}
