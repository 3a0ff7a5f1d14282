package mongodb

import (
	"context"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
	"creativehub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const defaultActivityLimit = 100

type activityRepository struct {
	store *store[model.ActivityModel]
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *mongo.Database) repository.ActivityRepository {
	s := newStore[model.ActivityModel](db, CollectionActivity, "resource", "resourceId", "action")
	s.sort = bson.D{{Key: "occurredAt", Value: -1}}

	return &activityRepository{store: s}
}

func (repo *activityRepository) Record(ctx context.Context, activity *entity.Activity) error {
	if activity.ReceivedAt.IsZero() {
		activity.ReceivedAt = now()
	}
	doc := &model.ActivityModel{
		ID:         assignID(activity.ID),
		MessageID:  activity.MessageID,
		RequestID:  activity.RequestID,
		Resource:   activity.Resource,
		Action:     activity.Action,
		ResourceID: activity.ResourceID,
		OccurredAt: activity.OccurredAt,
		ReceivedAt: activity.ReceivedAt,
	}
	if err := repo.store.insert(ctx, doc); err != nil {
		return err
	}
	activity.ID = doc.ID.Hex()

	return nil
}

func (repo *activityRepository) ListRecent(ctx context.Context, filter repository.ListFilter) ([]*entity.Activity, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultActivityLimit
	}

	docs, err := repo.store.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	activities := make([]*entity.Activity, 0, len(docs))
	for _, doc := range docs {
		activities = append(activities, toActivityDomain(doc))
	}

	return activities, nil
}
