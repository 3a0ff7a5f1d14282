package repository

import (
	"context"

	"creativehub/internal/domain/entity"
)

// ActivityRepository stores the resource change feed.
type ActivityRepository interface {
	// Record stores an activity. A redelivered message id returns ErrDuplicateKey.
	Record(ctx context.Context, activity *entity.Activity) error
	// ListRecent returns the newest activities first. ListFilter.Type narrows by resource.
	ListRecent(ctx context.Context, filter ListFilter) ([]*entity.Activity, error)
}
