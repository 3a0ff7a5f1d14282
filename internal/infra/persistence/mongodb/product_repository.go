package mongodb

import (
	"context"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// productRepository keeps one collection per product type.
type productRepository struct {
	stores map[entity.ProductType]*store[model.ProductModel]
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	stores := make(map[entity.ProductType]*store[model.ProductModel], len(entity.ProductTypes()))
	for _, t := range entity.ProductTypes() {
		stores[t] = newStore[model.ProductModel](db, t.Collection(), "", "title", "description", "tags")
	}

	return &productRepository{stores: stores}
}

func (repo *productRepository) store(productType entity.ProductType) (*store[model.ProductModel], error) {
	s, ok := repo.stores[productType]
	if !ok {
		return nil, errors.Errorf("unknown product type %q", productType)
	}

	return s, nil
}

func (repo *productRepository) List(ctx context.Context, productType entity.ProductType, filter repository.ListFilter) ([]*entity.Product, error) {
	s, err := repo.store(productType)
	if err != nil {
		return nil, err
	}

	docs, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, toProductDomain(doc))
	}

	return products, nil
}

func (repo *productRepository) FindByID(ctx context.Context, productType entity.ProductType, id string) (*entity.Product, error) {
	s, err := repo.store(productType)
	if err != nil {
		return nil, err
	}

	doc, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toProductDomain(doc), nil
}

func (repo *productRepository) FindBySlug(ctx context.Context, productType entity.ProductType, slug string) (*entity.Product, error) {
	s, err := repo.store(productType)
	if err != nil {
		return nil, err
	}

	doc, err := s.findOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return nil, err
	}

	return toProductDomain(doc), nil
}

// Create assigns the document id and timestamps back onto the entity.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	s, err := repo.store(product.Type)
	if err != nil {
		return err
	}

	product.CreatedAt = now()
	product.UpdatedAt = product.CreatedAt
	doc := fromProductDomain(product, assignID(product.ID))
	if err := s.insert(ctx, doc); err != nil {
		return err
	}
	product.ID = doc.ID.Hex()

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	s, err := repo.store(product.Type)
	if err != nil {
		return err
	}
	oid, err := objectID(product.ID)
	if err != nil {
		return err
	}

	product.UpdatedAt = now()

	return s.replace(ctx, oid, fromProductDomain(product, oid))
}

func (repo *productRepository) Delete(ctx context.Context, productType entity.ProductType, id string) error {
	s, err := repo.store(productType)
	if err != nil {
		return err
	}

	return s.deleteByID(ctx, id)
}
