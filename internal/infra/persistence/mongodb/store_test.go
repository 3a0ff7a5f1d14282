package mongodb

import (
	"testing"

	"creativehub/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Query(t *testing.T) {
	s := &store[struct{}]{searchFields: []string{"title", "tags"}, typeField: "role"}

	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, s.query(repository.ListFilter{}))
	})

	t.Run("search is escaped and case-insensitive", func(t *testing.T) {
		q := s.query(repository.ListFilter{Search: "ui (kit)"})
		or, ok := q["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, or, 2)
		assert.Equal(t, bson.M{"title": primitive.Regex{Pattern: `ui \(kit\)`, Options: "i"}}, or[0])
	})

	t.Run("status type and category", func(t *testing.T) {
		q := s.query(repository.ListFilter{Status: "draft", Type: "admin", Category: "icons"})
		assert.Equal(t, "draft", q["status"])
		assert.Equal(t, "admin", q["role"])
		assert.Equal(t, "icons", q["category"])
	})

	t.Run("type ignored without a type field", func(t *testing.T) {
		plain := &store[struct{}]{}
		assert.Len(t, plain.query(repository.ListFilter{Type: "x"}), 0)
	})
}

func TestTranslateWriteError(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	err := translateWriteError(dup, "insert into graphics")
	assert.True(t, errors.Is(err, repository.ErrDuplicateKey))

	other := translateWriteError(errors.New("boom"), "insert")
	assert.False(t, errors.Is(other, repository.ErrDuplicateKey))
}

func TestObjectIDHelpers(t *testing.T) {
	oid := primitive.NewObjectID()

	parsed, err := objectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, parsed)

	_, err = objectID("nope")
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	assert.Equal(t, oid, assignID(oid.Hex()))
	assert.False(t, assignID("").IsZero())
}
