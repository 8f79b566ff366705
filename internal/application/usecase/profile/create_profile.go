package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/pkg/apperror"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

type CreateProfileUseCase struct {
	profileRepo profile.Repository
	publisher   profile.EventPublisher
	logger      logger.Logger
}

func NewCreateProfileUseCase(repo profile.Repository, pub profile.EventPublisher, log logger.Logger) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		profileRepo: repo,
		publisher:   pub,
		logger:      log,
	}
}

type CreateProfileInput struct {
	Name      string
	Email     string
	Education []profile.Education
	Skills    []string
	Projects  []profile.Project
	Work      []profile.Work
	Links     profile.Links
}

type CreateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *CreateProfileUseCase) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	now := time.Now().UTC()

	p := &profile.Profile{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Education: input.Education,
		Skills:    input.Skills,
		Projects:  input.Projects,
		Work:      input.Work,
		Links:     input.Links,
		CreatedAt: now,
		UpdatedAt: now,
	}

	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.publish(ctx, profile.EventCreated, p)

	return &CreateProfileOutput{Profile: p}, nil
}

// publish is best-effort: a broker failure never fails the write that
// already committed.
func (uc *CreateProfileUseCase) publish(ctx context.Context, t profile.EventType, p *profile.Profile) {
	ev := profile.Event{
		Type:      t,
		ProfileID: p.ID,
		Email:     p.Email,
		At:        time.Now().UTC(),
	}
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("failed to publish profile event",
			zap.String("type", string(t)), zap.String("profile_id", p.ID.String()), zap.Error(err))
	}
}
