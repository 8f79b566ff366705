package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/pkg/apperror"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

type fakeProfileRepo struct {
	byID map[uuid.UUID]*profile.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: make(map[uuid.UUID]*profile.Profile)}
}

func (f *fakeProfileRepo) emailTaken(email string, exclude uuid.UUID) bool {
	for _, p := range f.byID {
		if p.Email == email && p.ID != exclude {
			return true
		}
	}
	return false
}

func (f *fakeProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	if f.emailTaken(p.Email, p.ID) {
		return apperror.NewDuplicate("profile", "email", p.Email)
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, apperror.NewNotFound("profile", id.String())
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) FindAll(ctx context.Context) ([]*profile.Profile, error) {
	out := make([]*profile.Profile, 0, len(f.byID))
	for _, p := range f.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	if _, ok := f.byID[p.ID]; !ok {
		return apperror.NewNotFound("profile", p.ID.String())
	}
	if f.emailTaken(p.Email, p.ID) {
		return apperror.NewDuplicate("profile", "email", p.Email)
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return apperror.NewNotFound("profile", id.String())
	}
	delete(f.byID, id)
	return nil
}

type fakePublisher struct {
	events []profile.Event
	err    error
}

func (f *fakePublisher) Publish(ctx context.Context, ev profile.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

type fakeViewCounter struct {
	counts map[uuid.UUID]int64
	err    error
}

func newFakeViewCounter() *fakeViewCounter {
	return &fakeViewCounter{counts: make(map[uuid.UUID]int64)}
}

func (f *fakeViewCounter) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[id]++
	return f.counts[id], nil
}

func (f *fakeViewCounter) Views(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[id], nil
}

func validCreateInput() CreateProfileInput {
	return CreateProfileInput{
		Name:   "Alice Nguyen",
		Email:  "alice@example.com",
		Skills: []string{"Go", "Rust"},
		Projects: []profile.Project{
			{Title: "Chat Server", Technologies: []string{"Go"}},
		},
	}
}

func TestCreateProfile_NormalizesAndPersists(t *testing.T) {
	repo := newFakeProfileRepo()
	pub := &fakePublisher{}
	uc := NewCreateProfileUseCase(repo, pub, logger.NewNop())

	input := validCreateInput()
	input.Name = "  Alice Nguyen  "
	input.Email = "  Alice@Example.COM "
	input.Skills = []string{" Go ", "Rust"}

	out, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Alice Nguyen", out.Profile.Name)
	assert.Equal(t, "alice@example.com", out.Profile.Email)
	assert.Equal(t, []string{"Go", "Rust"}, out.Profile.Skills)
	assert.NotEqual(t, uuid.Nil, out.Profile.ID)
	assert.False(t, out.Profile.CreatedAt.IsZero())
	assert.Equal(t, out.Profile.CreatedAt, out.Profile.UpdatedAt)

	require.Len(t, pub.events, 1)
	assert.Equal(t, profile.EventCreated, pub.events[0].Type)
}

func TestCreateProfile_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateProfileInput)
	}{
		{"missing name", func(in *CreateProfileInput) { in.Name = "   " }},
		{"missing email", func(in *CreateProfileInput) { in.Email = "" }},
		{"blank project title", func(in *CreateProfileInput) {
			in.Projects = []profile.Project{{Title: "  "}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeProfileRepo()
			uc := NewCreateProfileUseCase(repo, &fakePublisher{}, logger.NewNop())

			input := validCreateInput()
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			assert.ErrorIs(t, err, apperror.ErrInvalidInput)
			assert.Empty(t, repo.byID)
		})
	}
}

func TestCreateProfile_DuplicateEmailRejected(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewCreateProfileUseCase(repo, &fakePublisher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	// Same address, different case and whitespace: normalizes to the same key.
	input := validCreateInput()
	input.Email = " ALICE@example.com "
	_, err = uc.Execute(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
	assert.Len(t, repo.byID, 1)
}

func TestCreateProfile_PublishFailureDoesNotFailWrite(t *testing.T) {
	repo := newFakeProfileRepo()
	pub := &fakePublisher{err: assert.AnError}
	uc := NewCreateProfileUseCase(repo, pub, logger.NewNop())

	out, err := uc.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)
	assert.Contains(t, repo.byID, out.Profile.ID)
}

func TestUpdateProfile_PartialPayloadLeavesOtherFields(t *testing.T) {
	repo := newFakeProfileRepo()
	create := NewCreateProfileUseCase(repo, &fakePublisher{}, logger.NewNop())
	created, err := create.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	pub := &fakePublisher{}
	uc := NewUpdateProfileUseCase(repo, pub, logger.NewNop())

	skills := []string{"Go", "Kafka", "Go"}
	out, err := uc.Execute(context.Background(), UpdateProfileInput{
		ID:     created.Profile.ID,
		Skills: &skills,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Nguyen", out.Profile.Name)
	assert.Equal(t, "alice@example.com", out.Profile.Email)
	assert.Equal(t, []string{"Go", "Kafka", "Go"}, out.Profile.Skills)
	assert.True(t, out.Profile.UpdatedAt.After(created.Profile.UpdatedAt) ||
		out.Profile.UpdatedAt.Equal(created.Profile.UpdatedAt))

	require.Len(t, pub.events, 1)
	assert.Equal(t, profile.EventUpdated, pub.events[0].Type)
}

func TestUpdateProfile_RevalidatesMergedDocument(t *testing.T) {
	repo := newFakeProfileRepo()
	create := NewCreateProfileUseCase(repo, &fakePublisher{}, logger.NewNop())
	created, err := create.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	uc := NewUpdateProfileUseCase(repo, &fakePublisher{}, logger.NewNop())

	blank := "   "
	_, err = uc.Execute(context.Background(), UpdateProfileInput{
		ID:   created.Profile.ID,
		Name: &blank,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	// No partial write is visible.
	stored, err := repo.FindByID(context.Background(), created.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Nguyen", stored.Name)
}

func TestUpdateProfile_UnknownIDIsNotFound(t *testing.T) {
	uc := NewUpdateProfileUseCase(newFakeProfileRepo(), &fakePublisher{}, logger.NewNop())

	name := "Bob"
	_, err := uc.Execute(context.Background(), UpdateProfileInput{ID: uuid.New(), Name: &name})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteProfile_SecondDeleteIsNotFound(t *testing.T) {
	repo := newFakeProfileRepo()
	create := NewCreateProfileUseCase(repo, &fakePublisher{}, logger.NewNop())
	created, err := create.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	uc := NewDeleteProfileUseCase(repo, &fakePublisher{}, logger.NewNop())

	require.NoError(t, uc.Execute(context.Background(), DeleteProfileInput{ID: created.Profile.ID}))
	err = uc.Execute(context.Background(), DeleteProfileInput{ID: created.Profile.ID})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetProfile_IncrementsViewsBestEffort(t *testing.T) {
	repo := newFakeProfileRepo()
	create := NewCreateProfileUseCase(repo, &fakePublisher{}, logger.NewNop())
	created, err := create.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	views := newFakeViewCounter()
	uc := NewGetProfileUseCase(repo, views, logger.NewNop())

	_, err = uc.Execute(context.Background(), GetProfileInput{ID: created.Profile.ID})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), GetProfileInput{ID: created.Profile.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), views.counts[created.Profile.ID])

	// A broken counter never fails the read.
	broken := NewGetProfileUseCase(repo, &fakeViewCounter{err: assert.AnError}, logger.NewNop())
	out, err := broken.Execute(context.Background(), GetProfileInput{ID: created.Profile.ID})
	require.NoError(t, err)
	assert.Equal(t, created.Profile.ID, out.Profile.ID)
}

func TestProfileViews_UnknownProfileIsNotFound(t *testing.T) {
	uc := NewProfileViewsUseCase(newFakeProfileRepo(), newFakeViewCounter())

	_, err := uc.Execute(context.Background(), ProfileViewsInput{ID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
