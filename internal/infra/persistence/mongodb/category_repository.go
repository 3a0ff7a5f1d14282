package mongodb

import (
	"context"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type categoryRepository struct {
	store *store[model.CategoryModel]
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &categoryRepository{
		store: newStore[model.CategoryModel](db, CollectionCategories, "type", "name", "slug"),
	}
}

func (repo *categoryRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Category, error) {
	docs, err := repo.store.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, toCategoryDomain(doc))
	}

	return categories, nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	doc, err := repo.store.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toCategoryDomain(doc), nil
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	doc, err := repo.store.findOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return nil, err
	}

	return toCategoryDomain(doc), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	category.CreatedAt = now()
	category.UpdatedAt = category.CreatedAt
	doc, err := fromCategoryDomain(category, assignID(category.ID))
	if err != nil {
		return err
	}
	if err := repo.store.insert(ctx, doc); err != nil {
		return err
	}
	category.ID = doc.ID.Hex()

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	oid, err := objectID(category.ID)
	if err != nil {
		return err
	}

	category.UpdatedAt = now()
	doc, err := fromCategoryDomain(category, oid)
	if err != nil {
		return err
	}

	return repo.store.replace(ctx, oid, doc)
}

func (repo *categoryRepository) Delete(ctx context.Context, id string) error {
	return repo.store.deleteByID(ctx, id)
}

func (repo *categoryRepository) CountChildren(ctx context.Context, parentID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(parentID)
	if err != nil {
		return 0, nil
	}

	return repo.store.coll.CountDocuments(ctx, bson.M{"parentCategory": oid})
}
