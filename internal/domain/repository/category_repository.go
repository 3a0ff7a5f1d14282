package repository

import (
	"context"

	"creativehub/internal/domain/entity"
)

// CategoryRepository persists product categories.
type CategoryRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*entity.Category, error)
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error

	// CountChildren returns how many categories reference parentID.
	CountChildren(ctx context.Context, parentID string) (int64, error)
}
