package impl

import (
	"context"
	"testing"

	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	mockRepo "creativehub/internal/mocks/repository"
	mockService "creativehub/internal/mocks/service"
	"creativehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProductService(t *testing.T, pub service.EventPublisher) (usecase.ProductUsecase, *mockRepo.MockProductRepository) {
	repo := mockRepo.NewMockProductRepository(t)
	srv := NewProductService(ProductServiceParams{
		ProductRepo: repo,
		Publisher:   pub,
		Logger:      newDiscardLogger(),
	})

	return srv, repo
}

func TestProductService_Create_Success(t *testing.T) {
	ctx := context.Background()
	pub := mockService.NewMockEventPublisher(t)
	srv, repo := newTestProductService(t, pub)

	repo.On("FindBySlug", ctx, entity.ProductTypeGraphics, "neon-icon-pack").
		Return(nil, repository.ErrNotFound).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Type == entity.ProductTypeGraphics && p.Slug == "neon-icon-pack" && p.Status == entity.StatusDraft
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Product).ID = "p1"
	}).Return(nil).Once()
	pub.On("PublishResourceEvent", ctx, mock.MatchedBy(func(e *service.ResourceEvent) bool {
		return e.Resource == "graphics" && e.Action == service.ActionCreated && e.ResourceID == "p1"
	})).Return(nil).Once()

	product, err := srv.Create(ctx, entity.ProductTypeGraphics, &usecase.ProductInput{
		Title:     "Neon Icon Pack",
		Price:     24,
		SalePrice: ptr(19.0),
		Tags:      []string{" icons ", "", "neon"},
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, []string{"icons", "neon"}, product.Tags)
}

func TestProductService_Create_RejectsSalePriceAtOrAbovePrice(t *testing.T) {
	srv, _ := newTestProductService(t, newQuietPublisher(t))

	_, err := srv.Create(context.Background(), entity.ProductTypeFonts, &usecase.ProductInput{
		Title:     "Retro Sans",
		Price:     20,
		SalePrice: ptr(20.0),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSalePrice))
}

func TestProductService_Create_UnknownType(t *testing.T) {
	srv, _ := newTestProductService(t, newQuietPublisher(t))

	_, err := srv.Create(context.Background(), entity.ProductType("sculptures"), &usecase.ProductInput{Title: "Bust"})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_Create_ExplicitSlugTaken(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestProductService(t, newQuietPublisher(t))

	repo.On("FindBySlug", ctx, entity.ProductTypeAudio, "lofi-beats").
		Return(&entity.Product{ID: "other"}, nil).Once()

	_, err := srv.Create(ctx, entity.ProductTypeAudio, &usecase.ProductInput{Title: "Lofi Beats", Slug: "lofi-beats", Price: 5})
	assert.True(t, errors.Is(err, domainerrors.ErrSlugConflict))
}

func TestProductService_Update_ClearsSalePriceAndValidatesMerged(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestProductService(t, newQuietPublisher(t))

	existing := &entity.Product{ID: "p1", Type: entity.ProductTypePhotos, Title: "Alps", Slug: "alps", Price: 30, SalePrice: ptr(25.0), Status: entity.StatusDraft}
	repo.On("FindByID", ctx, entity.ProductTypePhotos, "p1").Return(existing, nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil).Once()

	updated, err := srv.Update(ctx, entity.ProductTypePhotos, "p1", &usecase.ProductPatch{
		SalePrice: usecase.NullableFloat{Set: true},
		Status:    ptr("published"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.SalePrice)
	assert.Equal(t, entity.StatusPublished, updated.Status)
	assert.Equal(t, "alps", updated.Slug)
}

func TestProductService_Update_PriceBelowExistingSale(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestProductService(t, newQuietPublisher(t))

	repo.On("FindByID", ctx, entity.ProductTypePhotos, "p1").
		Return(&entity.Product{ID: "p1", Type: entity.ProductTypePhotos, Title: "Alps", Price: 30, SalePrice: ptr(25.0)}, nil).Once()

	_, err := srv.Update(ctx, entity.ProductTypePhotos, "p1", &usecase.ProductPatch{Price: ptr(20.0)})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSalePrice))
}

func TestProductService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestProductService(t, newQuietPublisher(t))

	repo.On("FindByID", ctx, entity.ProductTypeWebsites, "missing").Return(nil, repository.ErrNotFound).Once()

	_, err := srv.Get(ctx, entity.ProductTypeWebsites, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	pub := mockService.NewMockEventPublisher(t)
	srv, repo := newTestProductService(t, pub)

	repo.On("Delete", ctx, entity.ProductTypeUIKits, "k1").Return(nil).Once()
	pub.On("PublishResourceEvent", ctx, mock.MatchedBy(func(e *service.ResourceEvent) bool {
		return e.Action == service.ActionDeleted && e.ResourceID == "k1"
	})).Return(nil).Once()

	require.NoError(t, srv.Delete(ctx, entity.ProductTypeUIKits, "k1"))
}
