package repository

import (
	"context"

	"creativehub/internal/domain/entity"
)

// ProductRepository persists products; each product type lives in its own collection.
type ProductRepository interface {
	List(ctx context.Context, productType entity.ProductType, filter ListFilter) ([]*entity.Product, error)
	FindByID(ctx context.Context, productType entity.ProductType, id string) (*entity.Product, error)
	FindBySlug(ctx context.Context, productType entity.ProductType, slug string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, productType entity.ProductType, id string) error
}
