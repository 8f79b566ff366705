package query

import (
	"context"

	"github.com/namdhoang/portfolio-hub/internal/domain/query"
)

const defaultTopSkillsLimit = 10

type TopSkillsUseCase struct {
	queryRepo query.Repository
}

func NewTopSkillsUseCase(repo query.Repository) *TopSkillsUseCase {
	return &TopSkillsUseCase{queryRepo: repo}
}

type TopSkillsInput struct {
	// Limit caps the number of returned rows; anything non-positive falls
	// back to the default of 10.
	Limit int
}

type TopSkillsOutput struct {
	Skills []query.SkillCount
}

func (uc *TopSkillsUseCase) Execute(ctx context.Context, input TopSkillsInput) (*TopSkillsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultTopSkillsLimit
	}

	skills, err := uc.queryRepo.TopSkills(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &TopSkillsOutput{Skills: skills}, nil
}
