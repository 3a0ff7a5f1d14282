package usecase

import (
	"context"
	"time"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a buyer or seller account.
type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=buyer seller"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserInput is the admin body of POST /api/users. Password is write-only.
type UserInput struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Role      string `json:"role" validate:"required,oneof=buyer seller admin"`
	Status    string `json:"status" validate:"omitempty,oneof=active blocked"`
	Password  string `json:"password" validate:"required"`
}

// UserPatch is the admin body of PATCH /api/users/:id. An empty password keeps the current one.
type UserPatch struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=2"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role" validate:"omitempty,oneof=buyer seller admin"`
	Status    *string `json:"status" validate:"omitempty,oneof=active blocked"`
	Password  *string `json:"password"`
}

// --- Output DTOs ---

// AuthOutput returns the issued token with the signed-in user.
type AuthOutput struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *entity.User `json:"user"`
}

// AuthUsecase covers self-service registration and sign in.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Me(ctx context.Context, userID string) (*entity.User, error)
}

// UserUsecase is the admin user directory.
type UserUsecase interface {
	List(ctx context.Context, filter repository.ListFilter) ([]*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, input *UserInput) (*entity.User, error)
	Update(ctx context.Context, id string, patch *UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}

// SettingsUsecase exposes the platform feature flags.
type SettingsUsecase interface {
	// GetFeatureFlags returns the stored map, or the defaults before the first save.
	GetFeatureFlags(ctx context.Context) (entity.FeatureFlags, error)
	// ReplaceFeatureFlags stores the map wholesale; unknown groups are rejected.
	ReplaceFeatureFlags(ctx context.Context, flags entity.FeatureFlags) (entity.FeatureFlags, error)
}
