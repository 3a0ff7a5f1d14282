package mongodb

import (
	"context"
	"regexp"

	"creativehub/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// store wraps one collection holding documents of type M.
type store[M any] struct {
	coll *mongo.Collection
	// searchFields are matched case-insensitively by ListFilter.Search.
	searchFields []string
	// typeField receives ListFilter.Type; empty ignores it.
	typeField string
	sort      bson.D
}

func newStore[M any](db *mongo.Database, name, typeField string, searchFields ...string) *store[M] {
	return &store[M]{
		coll:         db.Collection(name),
		searchFields: searchFields,
		typeField:    typeField,
		sort:         bson.D{{Key: "createdAt", Value: -1}},
	}
}

// query translates a ListFilter into a bson filter.
func (s *store[M]) query(filter repository.ListFilter) bson.M {
	q := bson.M{}
	if filter.Search != "" && len(s.searchFields) > 0 {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		or := make(bson.A, 0, len(s.searchFields))
		for _, field := range s.searchFields {
			or = append(or, bson.M{field: pattern})
		}
		q["$or"] = or
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	if filter.Type != "" && s.typeField != "" {
		q[s.typeField] = filter.Type
	}
	if filter.Category != "" {
		q["category"] = filter.Category
	}

	return q
}

func (s *store[M]) list(ctx context.Context, filter repository.ListFilter) ([]*M, error) {
	opts := options.Find().SetSort(s.sort)
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}

	return s.find(ctx, s.query(filter), opts)
}

func (s *store[M]) find(ctx context.Context, q bson.M, opts ...*options.FindOptions) ([]*M, error) {
	cursor, err := s.coll.Find(ctx, q, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s", s.coll.Name())
	}

	docs := make([]*M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", s.coll.Name())
	}

	return docs, nil
}

func (s *store[M]) findOne(ctx context.Context, q bson.M) (*M, error) {
	doc := new(M)
	if err := s.coll.FindOne(ctx, q).Decode(doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to find in %s", s.coll.Name())
	}

	return doc, nil
}

// findByID treats a malformed id as a miss; no document can carry it.
func (s *store[M]) findByID(ctx context.Context, id string) (*M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s *store[M]) insert(ctx context.Context, doc *M) error {
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return translateWriteError(err, "insert into "+s.coll.Name())
	}

	return nil
}

func (s *store[M]) replace(ctx context.Context, id primitive.ObjectID, doc *M) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return translateWriteError(err, "replace in "+s.coll.Name())
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *store[M]) deleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrapf(err, "failed to delete from %s", s.coll.Name())
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *store[M]) deleteMany(ctx context.Context, q bson.M) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, q)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete from %s", s.coll.Name())
	}

	return res.DeletedCount, nil
}

func translateWriteError(err error, op string) error {
	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrap(repository.ErrDuplicateKey, op)
	}

	return errors.Wrap(err, op)
}

// objectID parses a hex id held by an entity, for writes that must reference an existing document.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(repository.ErrNotFound, "invalid object id %q", id)
	}

	return oid, nil
}

// assignID gives a new document an id unless the entity already carries a valid one.
func assignID(id string) primitive.ObjectID {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}

	return primitive.NewObjectID()
}
