package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "creativehub/internal/delivery/context"
	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	"creativehub/internal/usecase"

	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	events      events
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		events:      events{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, productType entity.ProductType, filter repository.ListFilter) ([]*entity.Product, error) {
	if !productType.IsValid() {
		return nil, domainerrors.ErrProductNotFound
	}

	products, err := srv.productRepo.List(ctx, productType, filter)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrProductNotFound, "list products")
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, productType entity.ProductType, id string) (*entity.Product, error) {
	if !productType.IsValid() {
		return nil, domainerrors.ErrProductNotFound
	}

	product, err := srv.productRepo.FindByID(ctx, productType, id)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrProductNotFound, "find product")
	}

	return product, nil
}

func (srv *productService) Create(ctx context.Context, productType entity.ProductType, input *usecase.ProductInput) (*entity.Product, error) {
	if !productType.IsValid() {
		return nil, domainerrors.ErrProductNotFound
	}
	if err := requireTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validateSalePrice(input.Price, input.SalePrice); err != nil {
		return nil, err
	}

	status := entity.PublishStatus(input.Status)
	if status == "" {
		status = entity.StatusDraft
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + input.Status)
	}

	slug, err := resolveSlug(ctx, input.Slug, input.Title, "", srv.slugLookup(productType))
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Type:        productType,
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Description: input.Description,
		Price:       input.Price,
		SalePrice:   input.SalePrice,
		Category:    input.Category,
		Tags:        cleanTags(input.Tags),
		Status:      status,
		Thumbnail:   input.Thumbnail,
		Rating:      input.Rating,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, repoError(err, domainerrors.ErrProductNotFound, "create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("type", string(productType)),
		slog.String("product_id", product.ID),
		slog.String("slug", product.Slug),
	)
	srv.events.emit(ctx, string(productType), service.ActionCreated, product.ID)

	return product, nil
}

func (srv *productService) Update(ctx context.Context, productType entity.ProductType, id string, patch *usecase.ProductPatch) (*entity.Product, error) {
	product, err := srv.Get(ctx, productType, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&product.Title, patch.Title)
	setIfPresent(&product.Description, patch.Description)
	setIfPresent(&product.Price, patch.Price)
	setIfPresent(&product.Category, patch.Category)
	setIfPresent(&product.Thumbnail, patch.Thumbnail)
	setIfPresent(&product.Rating, patch.Rating)
	if patch.SalePrice.Set {
		product.SalePrice = patch.SalePrice.Value
	}
	if patch.Tags != nil {
		product.Tags = cleanTags(patch.Tags)
	}
	if patch.Status != nil {
		product.Status = entity.PublishStatus(*patch.Status)
		if !product.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + *patch.Status)
		}
	}

	if err := requireTitle(product.Title); err != nil {
		return nil, err
	}
	if err := validateSalePrice(product.Price, product.SalePrice); err != nil {
		return nil, err
	}
	if patch.Slug != nil {
		slug, err := resolveSlug(ctx, *patch.Slug, product.Title, product.ID, srv.slugLookup(productType))
		if err != nil {
			return nil, err
		}
		product.Slug = slug
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, repoError(err, domainerrors.ErrProductNotFound, "update product")
	}

	srv.events.emit(ctx, string(productType), service.ActionUpdated, product.ID)

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, productType entity.ProductType, id string) error {
	if !productType.IsValid() {
		return domainerrors.ErrProductNotFound
	}

	if err := srv.productRepo.Delete(ctx, productType, id); err != nil {
		return repoError(err, domainerrors.ErrProductNotFound, "delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("type", string(productType)), slog.String("product_id", id))
	srv.events.emit(ctx, string(productType), service.ActionDeleted, id)

	return nil
}

func (srv *productService) slugLookup(productType entity.ProductType) slugLookup {
	return func(ctx context.Context, slug string) (string, error) {
		product, err := srv.productRepo.FindBySlug(ctx, productType, slug)
		if err != nil {
			return "", err
		}

		return product.ID, nil
	}
}
