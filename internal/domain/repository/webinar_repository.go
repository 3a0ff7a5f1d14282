package repository

import (
	"context"

	"creativehub/internal/domain/entity"
)

// WebinarRepository persists webinars.
type WebinarRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*entity.Webinar, error)
	FindByID(ctx context.Context, id string) (*entity.Webinar, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Webinar, error)
	Create(ctx context.Context, webinar *entity.Webinar) error
	Update(ctx context.Context, webinar *entity.Webinar) error
	Delete(ctx context.Context, id string) error
}
