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

type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	publisher   profile.EventPublisher
	logger      logger.Logger
}

func NewUpdateProfileUseCase(repo profile.Repository, pub profile.EventPublisher, log logger.Logger) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: repo,
		publisher:   pub,
		logger:      log,
	}
}

// UpdateProfileInput carries a partial payload: nil fields are left
// untouched on the stored document.
type UpdateProfileInput struct {
	ID        uuid.UUID
	Name      *string
	Email     *string
	Education *[]profile.Education
	Skills    *[]string
	Projects  *[]profile.Project
	Work      *[]profile.Work
	Links     *profile.Links
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p, err := uc.profileRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Email != nil {
		p.Email = *input.Email
	}
	if input.Education != nil {
		p.Education = *input.Education
	}
	if input.Skills != nil {
		p.Skills = *input.Skills
	}
	if input.Projects != nil {
		p.Projects = *input.Projects
	}
	if input.Work != nil {
		p.Work = *input.Work
	}
	if input.Links != nil {
		p.Links = *input.Links
	}

	// The merged document goes through the same rule set as a create.
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	ev := profile.Event{Type: profile.EventUpdated, ProfileID: p.ID, Email: p.Email, At: time.Now().UTC()}
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("failed to publish profile event",
			zap.String("type", string(ev.Type)), zap.String("profile_id", p.ID.String()), zap.Error(err))
	}

	return &UpdateProfileOutput{Profile: p}, nil
}
