package repository

import (
	"context"

	"creativehub/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindByEmail matches case-insensitively; emails are stored lowercased.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
