package impl

import (
	"context"
	"log/slog"
	"strings"

	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	"creativehub/internal/usecase"

	"go.uber.org/fx"
)

const resourceCategories = "categories"

type categoryService struct {
	categoryRepo repository.CategoryRepository
	events       events
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		events:       events{publisher: params.Publisher, logger: params.Logger},
	}
}

func (srv *categoryService) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx, filter)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrCategoryNotFound, "list categories")
	}

	return categories, nil
}

func (srv *categoryService) Get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrCategoryNotFound, "find category")
	}

	return category, nil
}

func (srv *categoryService) Create(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	status := entity.CategoryStatus(input.Status)
	if status == "" {
		status = entity.CategoryActive
	}

	category := &entity.Category{
		Name:           strings.TrimSpace(input.Name),
		Type:           input.Type,
		IsParent:       input.IsParent,
		ParentCategory: input.ParentCategory,
		Status:         status,
	}
	if err := srv.validate(ctx, category); err != nil {
		return nil, err
	}

	slug, err := resolveSlug(ctx, input.Slug, category.Name, "", srv.slugLookup)
	if err != nil {
		return nil, err
	}
	category.Slug = slug

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, repoError(err, domainerrors.ErrCategoryNotFound, "create category")
	}

	srv.events.emit(ctx, resourceCategories, service.ActionCreated, category.ID)

	return category, nil
}

func (srv *categoryService) Update(ctx context.Context, id string, patch *usecase.CategoryPatch) (*entity.Category, error) {
	category, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	wasParent := category.IsParent

	setIfPresent(&category.Name, patch.Name)
	setIfPresent(&category.Type, patch.Type)
	setIfPresent(&category.IsParent, patch.IsParent)
	if patch.ParentCategory.Set {
		category.ParentCategory = patch.ParentCategory.Value
	}
	if patch.Status != nil {
		category.Status = entity.CategoryStatus(*patch.Status)
	}

	if err := srv.validate(ctx, category); err != nil {
		return nil, err
	}
	if wasParent && (!category.IsParent || patch.Type != nil) {
		if err := srv.ensureNoChildren(ctx, category.ID); err != nil {
			return nil, err
		}
	}
	if patch.Slug != nil {
		slug, err := resolveSlug(ctx, *patch.Slug, category.Name, category.ID, srv.slugLookup)
		if err != nil {
			return nil, err
		}
		category.Slug = slug
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, repoError(err, domainerrors.ErrCategoryNotFound, "update category")
	}

	srv.events.emit(ctx, resourceCategories, service.ActionUpdated, category.ID)

	return category, nil
}

func (srv *categoryService) Delete(ctx context.Context, id string) error {
	if err := srv.ensureNoChildren(ctx, id); err != nil {
		return err
	}

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return repoError(err, domainerrors.ErrCategoryNotFound, "delete category")
	}

	srv.events.emit(ctx, resourceCategories, service.ActionDeleted, id)

	return nil
}

// validate enforces the tree rules: parents have no parent, children reference an
// existing parent category of the same type.
func (srv *categoryService) validate(ctx context.Context, category *entity.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if !entity.IsCategoryType(category.Type) {
		return domainerrors.ErrValidationFailed.WithDetails("unknown category type " + category.Type)
	}
	if !category.Status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(category.Status))
	}

	if category.ParentCategory != nil && *category.ParentCategory == "" {
		category.ParentCategory = nil
	}
	if category.IsParent {
		category.ParentCategory = nil

		return nil
	}
	if category.ParentCategory == nil {
		return domainerrors.ErrInvalidParentCategory.WithDetails("a subcategory needs a parent category")
	}
	if *category.ParentCategory == category.ID {
		return domainerrors.ErrInvalidParentCategory.WithDetails("a category cannot be its own parent")
	}

	parent, err := srv.categoryRepo.FindByID(ctx, *category.ParentCategory)
	if err != nil {
		return repoError(err, domainerrors.ErrInvalidParentCategory.WithDetails("parent category does not exist"), "find parent category")
	}
	if !parent.IsParent {
		return domainerrors.ErrInvalidParentCategory.WithDetails("selected category is not a parent category")
	}
	if parent.Type != category.Type {
		return domainerrors.ErrInvalidParentCategory.WithDetails("parent category belongs to another type")
	}

	return nil
}

func (srv *categoryService) ensureNoChildren(ctx context.Context, id string) error {
	children, err := srv.categoryRepo.CountChildren(ctx, id)
	if err != nil {
		return repoError(err, domainerrors.ErrCategoryNotFound, "count subcategories")
	}
	if children > 0 {
		return domainerrors.ErrConflict.WithDetails("category still has subcategories")
	}

	return nil
}

func (srv *categoryService) slugLookup(ctx context.Context, slug string) (string, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	return category.ID, nil
}
