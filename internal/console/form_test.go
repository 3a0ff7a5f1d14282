package console

import (
	"context"
	"net/http"
	"testing"
	"time"

	"creativehub/internal/client"
	"creativehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFormController_DefaultsAreExplicit(t *testing.T) {
	fc := NewFormController[entity.Product](newMockResource[entity.Product](t), ProductSchema(), FormOptions{})

	draft := fc.Draft()

	assert.Equal(t, ModeCreate, fc.Mode())
	assert.Len(t, draft, len(ProductSchema().Fields))
	assert.Equal(t, "0", draft["price"])
	assert.Equal(t, "draft", draft["status"])
	assert.Equal(t, "", draft["salePrice"])
}

func TestFormController_CreateRoundTrip(t *testing.T) {
	store := newMockResource[entity.Product](t)
	store.On("Create", mock.Anything, map[string]any{
		"title":       "Retro Poster",
		"slug":        "retro-poster",
		"description": "",
		"price":       float64(500),
		"salePrice":   nil,
		"category":    "",
		"tags":        []string{"retro", "print"},
		"status":      "draft",
		"thumbnail":   "",
		"rating":      float64(0),
	}).Return(entity.Product{ID: "p1", Title: "Retro Poster"}, nil).Once()

	rec := NewRecorder()
	fc := NewFormController[entity.Product](store, ProductSchema(), FormOptions{Noun: "Graphic", Notifier: rec})
	require.NoError(t, fc.Set("title", "Retro Poster"))
	require.NoError(t, fc.Set("price", "500"))
	require.NoError(t, fc.Set("tags", "retro, print,"))

	item, err := fc.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "p1", item.ID)
	store.AssertNumberOfCalls(t, "Create", 1)
	assert.Equal(t, Toast{Level: LevelSuccess, Message: "Graphic created successfully"}, withoutTime(rec.Last()))
}

func TestFormController_EditHydrationIsIdempotent(t *testing.T) {
	original := entity.Product{
		ID:          "p1",
		Type:        entity.ProductTypeGraphics,
		Title:       "Retro Poster",
		Slug:        "retro-poster-v2",
		Description: "Ten posters",
		Price:       1000,
		SalePrice:   ptr(799.5),
		Category:    "posters",
		Tags:        []string{"retro"},
		Status:      entity.StatusPublished,
		Thumbnail:   "https://cdn.example.com/p1.png",
		Rating:      4.5,
		CreatedAt:   time.Now(),
	}

	store := newMockResource[entity.Product](t)
	store.On("Get", mock.Anything, "p1").Return(original, nil).Once()
	store.On("Update", mock.Anything, "p1", map[string]any{
		"title":       original.Title,
		"slug":        original.Slug,
		"description": original.Description,
		"price":       original.Price,
		"salePrice":   *original.SalePrice,
		"category":    original.Category,
		"tags":        original.Tags,
		"status":      string(original.Status),
		"thumbnail":   original.Thumbnail,
		"rating":      original.Rating,
	}).Return(original, nil).Once()

	fc := NewFormController[entity.Product](store, ProductSchema(), FormOptions{})
	require.NoError(t, fc.Open(context.Background(), "p1"))
	assert.Equal(t, ModeEdit, fc.Mode())

	_, err := fc.Submit(context.Background())
	require.NoError(t, err)
}

func TestFormController_FailedUpdateKeepsDraft(t *testing.T) {
	store := newMockResource[entity.Product](t)
	store.On("Get", mock.Anything, "p1").Return(entity.Product{ID: "p1", Title: "Old", Price: 10, Status: entity.StatusDraft}, nil).Once()
	store.On("Update", mock.Anything, "p1", mock.Anything).
		Return(entity.Product{}, &client.APIError{Status: http.StatusConflict, Message: "Slug already exists"}).Once()

	rec := NewRecorder()
	fc := NewFormController[entity.Product](store, ProductSchema(), FormOptions{Notifier: rec})
	require.NoError(t, fc.Open(context.Background(), "p1"))
	require.NoError(t, fc.Set("title", "New title"))
	before := fc.Draft()

	_, err := fc.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, before, fc.Draft())
	assert.Equal(t, ModeEdit, fc.Mode())
	assert.Equal(t, "Slug already exists", rec.Last().Message)
}

func TestFormController_TransportFailureUsesFallback(t *testing.T) {
	store := newMockResource[entity.Product](t)
	store.On("Create", mock.Anything, mock.Anything).Return(entity.Product{}, context.DeadlineExceeded).Once()

	rec := NewRecorder()
	fc := NewFormController[entity.Product](store, ProductSchema(), FormOptions{Noun: "Graphic", Notifier: rec})
	require.NoError(t, fc.Set("title", "Poster"))

	_, err := fc.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Failed to save graphic", rec.Last().Message)
	assert.Equal(t, "Poster", fc.Value("title"))
}

func TestFormController_Slug(t *testing.T) {
	fc := NewFormController[entity.Product](newMockResource[entity.Product](t), ProductSchema(), FormOptions{})

	require.NoError(t, fc.Set("title", "Hello,  World!  2024"))
	assert.Equal(t, "hello-world-2024", fc.Value("slug"))

	require.NoError(t, fc.Set("slug", "custom"))
	require.NoError(t, fc.Set("title", "Something else"))
	assert.Equal(t, "custom", fc.Value("slug"))

	assert.Error(t, fc.Set("nope", "x"))
}

func TestFormController_ValidationBlocksRequest(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		values  map[string]string
		wantMsg string
	}{
		{
			name:    "required title",
			schema:  ProductSchema(),
			values:  map[string]string{"title": "   "},
			wantMsg: "Title is required",
		},
		{
			name:    "min length",
			schema:  ProductSchema(),
			values:  map[string]string{"title": "A"},
			wantMsg: "Title must be at least 2 characters",
		},
		{
			name:    "number coercion",
			schema:  ProductSchema(),
			values:  map[string]string{"title": "Poster", "price": "five"},
			wantMsg: "Price must be a number",
		},
		{
			name:    "enum",
			schema:  ProductSchema(),
			values:  map[string]string{"title": "Poster", "status": "archived"},
			wantMsg: "Status must be one of draft, pending, published",
		},
		{
			name:    "email",
			schema:  UserSchema(),
			values:  map[string]string{"firstName": "Ana", "email": "ana@", "password": "secret1"},
			wantMsg: "Please enter a valid email address",
		},
		{
			name:    "phone digits",
			schema:  UserSchema(),
			values:  map[string]string{"firstName": "Ana", "email": "ana@example.com", "password": "secret1", "phone": "+880 17-12"},
			wantMsg: "Phone must have 10 to 15 digits",
		},
		{
			name:    "password length",
			schema:  UserSchema(),
			values:  map[string]string{"firstName": "Ana", "email": "ana@example.com", "password": "123"},
			wantMsg: "Password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockResource[entity.User](t)
			rec := NewRecorder()
			fc := NewFormController[entity.User](store, tt.schema, FormOptions{Notifier: rec})
			for k, v := range tt.values {
				require.NoError(t, fc.Set(k, v))
			}

			_, err := fc.Submit(context.Background())

			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr[0].Message)
			assert.Equal(t, tt.wantMsg, rec.Last().Message)
			store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestFormController_UserEditOmitsBlankPassword(t *testing.T) {
	store := newMockResource[entity.User](t)
	store.On("Get", mock.Anything, "u1").Return(entity.User{
		ID: "u1", FirstName: "Ana", Email: "ana@example.com", Phone: "01712345678",
		Role: entity.RoleSeller, Status: entity.UserActive,
	}, nil).Once()
	store.On("Update", mock.Anything, "u1", mock.MatchedBy(func(p map[string]any) bool {
		_, hasPassword := p["password"]

		return !hasPassword && p["role"] == "seller"
	})).Return(entity.User{ID: "u1"}, nil).Once()

	fc := NewFormController[entity.User](store, UserSchema(), FormOptions{})
	require.NoError(t, fc.Open(context.Background(), "u1"))
	assert.Empty(t, fc.Value("password"))

	_, err := fc.Submit(context.Background())
	require.NoError(t, err)
}

func TestFormController_CreateOnlyFieldsSkippedOnEdit(t *testing.T) {
	store := newMockResource[entity.Module](t)
	store.On("Get", mock.Anything, "m1").Return(entity.Module{ID: "m1", Course: "c1", Title: "Intro", Order: 2}, nil).Once()
	store.On("Update", mock.Anything, "m1", map[string]any{
		"title":       "Intro",
		"description": "",
		"order":       3,
	}).Return(entity.Module{ID: "m1"}, nil).Once()

	fc := NewFormController[entity.Module](store, ModuleSchema(), FormOptions{})
	require.NoError(t, fc.Open(context.Background(), "m1"))
	require.NoError(t, fc.Set("order", "3"))

	_, err := fc.Submit(context.Background())
	require.NoError(t, err)
}

func TestFormController_OpenFailureNotifies(t *testing.T) {
	store := newMockResource[entity.Course](t)
	store.On("Get", mock.Anything, "missing").
		Return(entity.Course{}, &client.APIError{Status: http.StatusNotFound, Message: "Course not found"}).Once()

	rec := NewRecorder()
	fc := NewFormController[entity.Course](store, CourseSchema(), FormOptions{Notifier: rec})

	require.Error(t, fc.Open(context.Background(), "missing"))
	assert.Equal(t, ModeCreate, fc.Mode())
	assert.Equal(t, "Course not found", rec.Last().Message)
}
