package mongodb

import (
	"context"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const featureFlagsKey = "modules"

type settingsRepository struct {
	store *store[model.SettingsModel]
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *mongo.Database) repository.SettingsRepository {
	return &settingsRepository{
		store: newStore[model.SettingsModel](db, CollectionSettings, ""),
	}
}

func (repo *settingsRepository) GetFeatureFlags(ctx context.Context) (entity.FeatureFlags, error) {
	doc, err := repo.store.findOne(ctx, bson.M{"_id": featureFlagsKey})
	if err != nil {
		return nil, err
	}

	return entity.FeatureFlags(doc.Modules).Clone(), nil
}

func (repo *settingsRepository) ReplaceFeatureFlags(ctx context.Context, flags entity.FeatureFlags) error {
	doc := &model.SettingsModel{
		Key:       featureFlagsKey,
		Modules:   flags.Clone(),
		UpdatedAt: now(),
	}

	_, err := repo.store.coll.ReplaceOne(ctx, bson.M{"_id": featureFlagsKey}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(err, "failed to save feature flags")
	}

	return nil
}
