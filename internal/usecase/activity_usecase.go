package usecase

import (
	"context"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
)

// ActivityUsecase records delivered resource events and serves the admin feed.
type ActivityUsecase interface {
	// Record stores one delivered event. Redeliveries of messageID are ignored.
	Record(ctx context.Context, messageID string, event *service.ResourceEvent) error
	List(ctx context.Context, filter repository.ListFilter) ([]*entity.Activity, error)
}
