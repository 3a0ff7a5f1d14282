// Package mongodb contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"creativehub/config"
	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names outside the per-type product collections.
const (
	CollectionCategories   = "categories"
	CollectionCourses      = "courses"
	CollectionModules      = "modules"
	CollectionLessons      = "lessons"
	CollectionCertificates = "certificates"
	CollectionWebinars     = "webinars"
	CollectionUsers        = "users"
	CollectionSettings     = "settings"
	CollectionActivity     = "activity"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database.
// The connection is verified and indexes are ensured when the app starts.
func New(params Params) (*mongo.Database, error) {
	client, err := Open(params.Config.Mongo)
	if err != nil {
		return nil, err
	}
	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("MongoDB connected", slog.String("database", db.Name()))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return db, nil
}

// Open builds a client from configuration. The driver connects lazily, so callers
// outside fx should Ping before use.
func Open(cfg *config.MongoConfig) (*mongo.Client, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri must be configured")
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout).SetServerSelectionTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	return client, nil
}

// EnsureIndexes creates the unique and ordering indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	uniqueSlug := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	byCreated := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}

	plan := map[string][]mongo.IndexModel{
		CollectionCategories: {uniqueSlug, {Keys: bson.D{{Key: "parentCategory", Value: 1}}}},
		CollectionCourses:    {uniqueSlug, byCreated},
		CollectionWebinars:   {uniqueSlug, byCreated},
		CollectionModules:    {{Keys: bson.D{{Key: "course", Value: 1}, {Key: "order", Value: 1}}}},
		CollectionLessons:    {{Keys: bson.D{{Key: "module", Value: 1}, {Key: "order", Value: 1}}}},
		CollectionCertificates: {{
			Keys:    bson.D{{Key: "certificateId", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		CollectionUsers: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		CollectionActivity: {
			{Keys: bson.D{{Key: "messageId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "occurredAt", Value: -1}}},
		},
	}
	for _, t := range entity.ProductTypes() {
		plan[t.Collection()] = []mongo.IndexModel{uniqueSlug, byCreated}
	}

	for name, indexes := range plan {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", name)
		}
	}

	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
