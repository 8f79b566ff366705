package query

import (
	"context"
	"strings"

	"github.com/namdhoang/portfolio-hub/internal/domain/query"
)

type ListProjectsUseCase struct {
	queryRepo query.Repository
}

func NewListProjectsUseCase(repo query.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{queryRepo: repo}
}

type ListProjectsInput struct {
	// Skill is an optional case-insensitive substring matched against each
	// project's technologies. Empty means no filter.
	Skill string
}

type ListProjectsOutput struct {
	Projects []query.FlatProject
}

// Execute flattens every profile's projects into one sequence, preserving
// profile-then-project stored order, and keeps a project only when its
// technologies match the filter. A filter that matches nothing yields an
// empty slice.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	profiles, err := uc.queryRepo.ListProfileProjects(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(input.Skill)

	flat := make([]query.FlatProject, 0)
	for _, pp := range profiles {
		for _, proj := range pp.Projects {
			if needle != "" && !technologiesMatch(proj.Technologies, needle) {
				continue
			}
			flat = append(flat, query.FlatProject{
				Title:        proj.Title,
				Description:  proj.Description,
				Links:        proj.Links,
				Technologies: proj.Technologies,
				ProfileName:  pp.ProfileName,
				ProfileID:    pp.ProfileID,
			})
		}
	}

	return &ListProjectsOutput{Projects: flat}, nil
}

func technologiesMatch(technologies []string, needle string) bool {
	for _, tech := range technologies {
		if strings.Contains(strings.ToLower(tech), needle) {
			return true
		}
	}
	return false
}
