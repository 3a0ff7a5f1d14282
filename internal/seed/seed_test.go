package seed

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"creativehub/internal/domain/entity"
	"creativehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockTarget struct {
	mock.Mock
}

func (m *mockTarget) Replace(ctx context.Context, collection string, docs []any) (int64, error) {
	ret := m.Called(ctx, collection, docs)

	return ret.Get(0).(int64), ret.Error(1)
}

func TestDefault_Collections(t *testing.T) {
	batches := Default(time.Now())

	names := make([]string, len(batches))
	for i, b := range batches {
		names[i] = b.Collection
		assert.NotEmpty(t, b.Documents, b.Collection)
	}
	assert.Equal(t, []string{"categories", "graphics", "video_templates", "fonts", "websites"}, names)
}

func TestDefault_Invariants(t *testing.T) {
	batches := Default(time.Now())

	parents := map[primitive.ObjectID]string{}
	slugsByType := map[string]map[string]bool{}
	for _, doc := range batches[0].Documents {
		c := doc.(model.CategoryModel)
		if slugsByType[c.Type] == nil {
			slugsByType[c.Type] = map[string]bool{}
		}
		slugsByType[c.Type][c.Slug] = true
		if c.IsParent {
			assert.Nil(t, c.ParentCategory, c.Slug)
			parents[c.ID] = c.Type
		}
	}
	for _, doc := range batches[0].Documents {
		c := doc.(model.CategoryModel)
		if !c.IsParent {
			require.NotNil(t, c.ParentCategory, c.Slug)
			assert.Equal(t, c.Type, parents[*c.ParentCategory], "child %s must sit under a parent of the same type", c.Slug)
		}
	}

	for _, b := range batches[1:] {
		seen := map[string]bool{}
		for _, doc := range b.Documents {
			p := doc.(model.ProductModel)
			assert.False(t, seen[p.Slug], "duplicate slug %s", p.Slug)
			seen[p.Slug] = true
			assert.True(t, entity.PublishStatus(p.Status).IsValid(), p.Slug)
			assert.True(t, slugsByType[p.Type][p.Category], "%s refers to unknown category %s", p.Slug, p.Category)
			if p.SalePrice != nil {
				assert.Less(t, *p.SalePrice, p.Price, p.Slug)
			}
		}
	}
}

func TestSeeder_Run(t *testing.T) {
	batches := []Batch{
		{Collection: "categories", Documents: []any{"a", "b"}},
		{Collection: "graphics", Documents: []any{"c"}},
		{Collection: "fonts", Documents: []any{"d"}},
	}

	t.Run("replaces every batch in order", func(t *testing.T) {
		target := &mockTarget{}
		target.On("Replace", mock.Anything, "categories", batches[0].Documents).Return(int64(5), nil).Once()
		target.On("Replace", mock.Anything, "graphics", batches[1].Documents).Return(int64(0), nil).Once()
		target.On("Replace", mock.Anything, "fonts", batches[2].Documents).Return(int64(1), nil).Once()

		report, err := New(target, slog.New(slog.DiscardHandler)).Run(context.Background(), batches)

		require.NoError(t, err)
		assert.Equal(t, map[string]int{"categories": 2, "graphics": 1, "fonts": 1}, report.Inserted)
		target.AssertExpectations(t)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		target := &mockTarget{}
		target.On("Replace", mock.Anything, "categories", mock.Anything).Return(int64(0), nil).Once()
		target.On("Replace", mock.Anything, "graphics", mock.Anything).Return(int64(0), errors.New("insert into graphics: connection reset")).Once()

		report, err := New(target, slog.New(slog.DiscardHandler)).Run(context.Background(), batches)

		require.Error(t, err)
		assert.Equal(t, map[string]int{"categories": 2}, report.Inserted)
		target.AssertNotCalled(t, "Replace", mock.Anything, "fonts", mock.Anything)
	})
}
