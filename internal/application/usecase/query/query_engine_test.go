package query

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/internal/domain/query"
	"github.com/namdhoang/portfolio-hub/pkg/apperror"
)

type fakeQueryRepo struct {
	profileProjects []query.ProfileProjects
	skillCounts     []query.SkillCount
	searchResults   []*profile.Profile

	gotLimit int
	gotQuery string
	err      error
}

func (f *fakeQueryRepo) ListProfileProjects(ctx context.Context) ([]query.ProfileProjects, error) {
	return f.profileProjects, f.err
}

func (f *fakeQueryRepo) TopSkills(ctx context.Context, limit int) ([]query.SkillCount, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.skillCounts) {
		return f.skillCounts[:limit], nil
	}
	return f.skillCounts, nil
}

func (f *fakeQueryRepo) SearchProfiles(ctx context.Context, q string) ([]*profile.Profile, error) {
	f.gotQuery = q
	return f.searchResults, f.err
}

func twoProfilesWithProjects() (uuid.UUID, uuid.UUID, []query.ProfileProjects) {
	aliceID := uuid.New()
	bobID := uuid.New()
	return aliceID, bobID, []query.ProfileProjects{
		{
			ProfileID:   aliceID,
			ProfileName: "Alice",
			Projects: []profile.Project{
				{Title: "Chat Server", Technologies: []string{"Go", "Redis"}},
				{Title: "Dashboard", Technologies: []string{"React 18", "TypeScript"}},
			},
		},
		{
			ProfileID:   bobID,
			ProfileName: "Bob",
			Projects: []profile.Project{
				{Title: "Pipeline", Technologies: []string{"Kafka", "Go"}},
			},
		},
	}
}

func TestListProjects_NoFilterFlattensEverything(t *testing.T) {
	aliceID, bobID, pps := twoProfilesWithProjects()
	uc := NewListProjectsUseCase(&fakeQueryRepo{profileProjects: pps})

	out, err := uc.Execute(context.Background(), ListProjectsInput{})
	require.NoError(t, err)
	require.Len(t, out.Projects, 3)

	// Profile-then-project stored order, each annotated with its owner.
	assert.Equal(t, "Chat Server", out.Projects[0].Title)
	assert.Equal(t, "Alice", out.Projects[0].ProfileName)
	assert.Equal(t, aliceID, out.Projects[0].ProfileID)
	assert.Equal(t, "Dashboard", out.Projects[1].Title)
	assert.Equal(t, "Pipeline", out.Projects[2].Title)
	assert.Equal(t, bobID, out.Projects[2].ProfileID)
}

func TestListProjects_SkillFilterIsCaseInsensitiveSubstring(t *testing.T) {
	_, _, pps := twoProfilesWithProjects()
	uc := NewListProjectsUseCase(&fakeQueryRepo{profileProjects: pps})

	// "react" must match the "React 18" technology entry.
	out, err := uc.Execute(context.Background(), ListProjectsInput{Skill: "react"})
	require.NoError(t, err)
	require.Len(t, out.Projects, 1)
	assert.Equal(t, "Dashboard", out.Projects[0].Title)

	out, err = uc.Execute(context.Background(), ListProjectsInput{Skill: "GO"})
	require.NoError(t, err)
	require.Len(t, out.Projects, 2)
	assert.Equal(t, "Chat Server", out.Projects[0].Title)
	assert.Equal(t, "Pipeline", out.Projects[1].Title)
}

func TestListProjects_NoMatchYieldsEmptySliceNotError(t *testing.T) {
	_, _, pps := twoProfilesWithProjects()
	uc := NewListProjectsUseCase(&fakeQueryRepo{profileProjects: pps})

	out, err := uc.Execute(context.Background(), ListProjectsInput{Skill: "cobol"})
	require.NoError(t, err)
	assert.NotNil(t, out.Projects)
	assert.Empty(t, out.Projects)
}

func TestListProjects_RepoErrorAbortsQuery(t *testing.T) {
	uc := NewListProjectsUseCase(&fakeQueryRepo{err: apperror.NewInternal("boom", errors.New("db down"))})

	_, err := uc.Execute(context.Background(), ListProjectsInput{})
	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestTopSkills_DefaultsToTen(t *testing.T) {
	repo := &fakeQueryRepo{}
	uc := NewTopSkillsUseCase(repo)

	_, err := uc.Execute(context.Background(), TopSkillsInput{})
	require.NoError(t, err)
	assert.Equal(t, 10, repo.gotLimit)

	_, err = uc.Execute(context.Background(), TopSkillsInput{Limit: -3})
	require.NoError(t, err)
	assert.Equal(t, 10, repo.gotLimit)
}

func TestTopSkills_TruncatesToLimit(t *testing.T) {
	repo := &fakeQueryRepo{skillCounts: []query.SkillCount{
		{Skill: "Go", Count: 5},
		{Skill: "Rust", Count: 3},
		{Skill: "rust", Count: 1},
	}}
	uc := NewTopSkillsUseCase(repo)

	out, err := uc.Execute(context.Background(), TopSkillsInput{Limit: 2})
	require.NoError(t, err)
	require.Len(t, out.Skills, 2)

	// More limit than distinct skills returns everything, no padding.
	out, err = uc.Execute(context.Background(), TopSkillsInput{Limit: 50})
	require.NoError(t, err)
	assert.Len(t, out.Skills, 3)
}

func TestSearch_EmptyQueryRejectedBeforeStorage(t *testing.T) {
	repo := &fakeQueryRepo{}
	uc := NewSearchProfilesUseCase(repo)

	_, err := uc.Execute(context.Background(), SearchProfilesInput{Query: ""})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, repo.gotQuery)
}

func TestSearch_PassesQueryThrough(t *testing.T) {
	match := &profile.Profile{ID: uuid.New(), Name: "Alice"}
	repo := &fakeQueryRepo{searchResults: []*profile.Profile{match}}
	uc := NewSearchProfilesUseCase(repo)

	out, err := uc.Execute(context.Background(), SearchProfilesInput{Query: "ali"})
	require.NoError(t, err)
	assert.Equal(t, "ali", repo.gotQuery)
	require.Len(t, out.Profiles, 1)
	assert.Equal(t, match.ID, out.Profiles[0].ID)
}
