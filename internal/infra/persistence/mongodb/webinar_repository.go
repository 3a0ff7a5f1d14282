package mongodb

import (
	"context"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type webinarRepository struct {
	store *store[model.WebinarModel]
}

// NewWebinarRepository is the constructor for webinarRepository.
func NewWebinarRepository(db *mongo.Database) repository.WebinarRepository {
	s := newStore[model.WebinarModel](db, CollectionWebinars, "", "title", "host")
	s.sort = bson.D{{Key: "scheduledAt", Value: 1}}

	return &webinarRepository{store: s}
}

func (repo *webinarRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Webinar, error) {
	docs, err := repo.store.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	webinars := make([]*entity.Webinar, 0, len(docs))
	for _, doc := range docs {
		webinars = append(webinars, toWebinarDomain(doc))
	}

	return webinars, nil
}

func (repo *webinarRepository) FindByID(ctx context.Context, id string) (*entity.Webinar, error) {
	doc, err := repo.store.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toWebinarDomain(doc), nil
}

func (repo *webinarRepository) FindBySlug(ctx context.Context, slug string) (*entity.Webinar, error) {
	doc, err := repo.store.findOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return nil, err
	}

	return toWebinarDomain(doc), nil
}

func (repo *webinarRepository) Create(ctx context.Context, webinar *entity.Webinar) error {
	webinar.CreatedAt = now()
	webinar.UpdatedAt = webinar.CreatedAt
	doc := fromWebinarDomain(webinar, assignID(webinar.ID))
	if err := repo.store.insert(ctx, doc); err != nil {
		return err
	}
	webinar.ID = doc.ID.Hex()

	return nil
}

func (repo *webinarRepository) Update(ctx context.Context, webinar *entity.Webinar) error {
	oid, err := objectID(webinar.ID)
	if err != nil {
		return err
	}

	webinar.UpdatedAt = now()

	return repo.store.replace(ctx, oid, fromWebinarDomain(webinar, oid))
}

func (repo *webinarRepository) Delete(ctx context.Context, id string) error {
	return repo.store.deleteByID(ctx, id)
}
