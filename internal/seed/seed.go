// Package seed clears and repopulates the storefront collections with a fixed demo catalogue.
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Batch is the literal content of one collection.
type Batch struct {
	Collection string
	Documents  []any
}

// Target replaces the content of a collection.
type Target interface {
	Replace(ctx context.Context, collection string, docs []any) (deleted int64, err error)
}

// MongoTarget writes batches into a database.
type MongoTarget struct {
	db *mongo.Database
}

// NewMongoTarget wraps db.
func NewMongoTarget(db *mongo.Database) *MongoTarget {
	return &MongoTarget{db: db}
}

// Replace deletes every document of collection and inserts docs.
func (t *MongoTarget) Replace(ctx context.Context, collection string, docs []any) (int64, error) {
	coll := t.db.Collection(collection)

	res, err := coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrapf(err, "clear %s", collection)
	}
	if len(docs) > 0 {
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return res.DeletedCount, errors.Wrapf(err, "insert into %s", collection)
		}
	}

	return res.DeletedCount, nil
}

// Seeder applies a dataset batch by batch, stopping at the first failure.
type Seeder struct {
	target Target
	logger *slog.Logger
}

// New returns a seeder writing to target.
func New(target Target, logger *slog.Logger) *Seeder {
	return &Seeder{target: target, logger: logger}
}

// Report counts what a run inserted per collection.
type Report struct {
	Inserted map[string]int
	Elapsed  time.Duration
}

// Run replaces every batch in order.
func (s *Seeder) Run(ctx context.Context, batches []Batch) (*Report, error) {
	start := time.Now()
	report := &Report{Inserted: make(map[string]int, len(batches))}

	for _, b := range batches {
		s.logger.Info("Seeding collection", slog.String("collection", b.Collection), slog.Int("documents", len(b.Documents)))

		deleted, err := s.target.Replace(ctx, b.Collection, b.Documents)
		if err != nil {
			s.logger.Error("Seeding failed", slog.String("collection", b.Collection), slog.Any("error", err))

			return report, err
		}
		report.Inserted[b.Collection] = len(b.Documents)

		s.logger.Info("Collection seeded",
			slog.String("collection", b.Collection),
			slog.Int64("cleared", deleted),
			slog.Int("inserted", len(b.Documents)),
		)
	}

	report.Elapsed = time.Since(start)
	s.logger.Info("Seeding complete", slog.Duration("elapsed", report.Elapsed))

	return report, nil
}
