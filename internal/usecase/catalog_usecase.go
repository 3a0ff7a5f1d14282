// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
)

// --- Input DTOs ---

// ProductInput is the body of POST /api/<type>.
type ProductInput struct {
	Title       string   `json:"title" validate:"required,min=2"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	SalePrice   *float64 `json:"salePrice" validate:"omitempty,gte=0"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft pending published"`
	Thumbnail   string   `json:"thumbnail"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
}

// ProductPatch is the body of PATCH /api/<type>/:id; absent keys are left untouched.
type ProductPatch struct {
	Title       *string       `json:"title" validate:"omitempty,min=2"`
	Slug        *string       `json:"slug"`
	Description *string       `json:"description"`
	Price       *float64      `json:"price" validate:"omitempty,gte=0"`
	SalePrice   NullableFloat `json:"salePrice"`
	Category    *string       `json:"category"`
	Tags        []string      `json:"tags"`
	Status      *string       `json:"status" validate:"omitempty,oneof=draft pending published"`
	Thumbnail   *string       `json:"thumbnail"`
	Rating      *float64      `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// CategoryInput is the body of POST /api/categories.
type CategoryInput struct {
	Name           string  `json:"name" validate:"required,min=2"`
	Slug           string  `json:"slug"`
	Type           string  `json:"type" validate:"required"`
	IsParent       bool    `json:"isParent"`
	ParentCategory *string `json:"parentCategory"`
	Status         string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryPatch is the body of PATCH /api/categories/:id.
type CategoryPatch struct {
	Name           *string        `json:"name" validate:"omitempty,min=2"`
	Slug           *string        `json:"slug"`
	Type           *string        `json:"type"`
	IsParent       *bool          `json:"isParent"`
	ParentCategory NullableString `json:"parentCategory"`
	Status         *string        `json:"status" validate:"omitempty,oneof=active inactive"`
}

// WebinarInput is the body of POST /api/webinars.
type WebinarInput struct {
	Title           string    `json:"title" validate:"required,min=2"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	Host            string    `json:"host" validate:"required"`
	ScheduledAt     time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"gte=0"`
	Price           float64   `json:"price" validate:"gte=0"`
	Status          string    `json:"status" validate:"omitempty,oneof=draft pending published"`
	MeetingURL      string    `json:"meetingUrl" validate:"omitempty,url"`
	Thumbnail       string    `json:"thumbnail"`
}

// WebinarPatch is the body of PATCH /api/webinars/:id.
type WebinarPatch struct {
	Title           *string    `json:"title" validate:"omitempty,min=2"`
	Slug            *string    `json:"slug"`
	Description     *string    `json:"description"`
	Host            *string    `json:"host"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	DurationMinutes *int       `json:"durationMinutes" validate:"omitempty,gte=0"`
	Price           *float64   `json:"price" validate:"omitempty,gte=0"`
	Status          *string    `json:"status" validate:"omitempty,oneof=draft pending published"`
	MeetingURL      *string    `json:"meetingUrl" validate:"omitempty,url"`
	Thumbnail       *string    `json:"thumbnail"`
}

// ProductUsecase manages the per-type product catalogues.
type ProductUsecase interface {
	List(ctx context.Context, productType entity.ProductType, filter repository.ListFilter) ([]*entity.Product, error)
	Get(ctx context.Context, productType entity.ProductType, id string) (*entity.Product, error)
	Create(ctx context.Context, productType entity.ProductType, input *ProductInput) (*entity.Product, error)
	Update(ctx context.Context, productType entity.ProductType, id string, patch *ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, productType entity.ProductType, id string) error
}

// CategoryUsecase manages the category tree.
type CategoryUsecase interface {
	List(ctx context.Context, filter repository.ListFilter) ([]*entity.Category, error)
	Get(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id string, patch *CategoryPatch) (*entity.Category, error)
	// Delete refuses parents that still have children.
	Delete(ctx context.Context, id string) error
}

// WebinarUsecase manages scheduled webinars.
type WebinarUsecase interface {
	List(ctx context.Context, filter repository.ListFilter) ([]*entity.Webinar, error)
	Get(ctx context.Context, id string) (*entity.Webinar, error)
	Create(ctx context.Context, input *WebinarInput) (*entity.Webinar, error)
	Update(ctx context.Context, id string, patch *WebinarPatch) (*entity.Webinar, error)
	Delete(ctx context.Context, id string) error
}
