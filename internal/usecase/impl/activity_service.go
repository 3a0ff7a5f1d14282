package impl

import (
	"context"
	"log/slog"

	deliverycontext "creativehub/internal/delivery/context"
	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	"creativehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) Record(ctx context.Context, messageID string, event *service.ResourceEvent) error {
	if event == nil || event.Resource == "" || event.Action == "" {
		return domainerrors.ErrValidationFailed.WithDetails("event needs resource and action")
	}
	if messageID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("message id is required")
	}

	activity := &entity.Activity{
		MessageID:  messageID,
		RequestID:  event.RequestID,
		Resource:   event.Resource,
		Action:     event.Action,
		ResourceID: event.ResourceID,
		OccurredAt: event.OccurredAt,
	}

	err := srv.activityRepo.Record(ctx, activity)
	if errors.Is(err, repository.ErrDuplicateKey) {
		deliverycontext.LoggerFrom(ctx, srv.logger).Debug("Duplicate delivery ignored",
			slog.String("message_id", messageID),
		)

		return nil
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "record activity")
	}

	return nil
}

func (srv *activityService) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Activity, error) {
	activities, err := srv.activityRepo.ListRecent(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list activity")
	}

	return activities, nil
}
