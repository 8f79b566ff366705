package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

type DeleteProfileUseCase struct {
	profileRepo profile.Repository
	publisher   profile.EventPublisher
	logger      logger.Logger
}

func NewDeleteProfileUseCase(repo profile.Repository, pub profile.EventPublisher, log logger.Logger) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{
		profileRepo: repo,
		publisher:   pub,
		logger:      log,
	}
}

type DeleteProfileInput struct {
	ID uuid.UUID
}

func (uc *DeleteProfileUseCase) Execute(ctx context.Context, input DeleteProfileInput) error {
	if err := uc.profileRepo.Delete(ctx, input.ID); err != nil {
		return err
	}

	ev := profile.Event{Type: profile.EventDeleted, ProfileID: input.ID, At: time.Now().UTC()}
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.logger.Warn("failed to publish profile event",
			zap.String("type", string(ev.Type)), zap.String("profile_id", input.ID.String()), zap.Error(err))
	}

	return nil
}
