package handler

import (
	"net/http"

	"creativehub/internal/delivery/http/response"
	"creativehub/internal/domain/entity"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves every product catalogue; each route is bound to one product type.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// List handles GET /api/<type>.
func (h *ProductHandler) List(productType entity.ProductType) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter, err := listFilter(c)
		if err != nil {
			return err
		}

		products, err := h.productUC.List(c.Request().Context(), productType, filter)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.OK(c, products)
	}
}

// Get handles GET /api/<type>/:id.
func (h *ProductHandler) Get(productType entity.ProductType) echo.HandlerFunc {
	return func(c echo.Context) error {
		product, err := h.productUC.Get(c.Request().Context(), productType, c.Param("id"))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.OK(c, product)
	}
}

// Create handles POST /api/<type>.
func (h *ProductHandler) Create(productType entity.ProductType) echo.HandlerFunc {
	return func(c echo.Context) error {
		var input usecase.ProductInput
		if err := bindAndValidate(c, &input); err != nil {
			return err
		}

		product, err := h.productUC.Create(c.Request().Context(), productType, &input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Created(c, product, "Product created successfully")
	}
}

// Update handles PATCH and PUT /api/<type>/:id.
func (h *ProductHandler) Update(productType entity.ProductType) echo.HandlerFunc {
	return func(c echo.Context) error {
		var patch usecase.ProductPatch
		if err := bindAndValidate(c, &patch); err != nil {
			return err
		}

		product, err := h.productUC.Update(c.Request().Context(), productType, c.Param("id"), &patch)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, product, "Product updated successfully")
	}
}

// Delete handles DELETE /api/<type>/:id.
func (h *ProductHandler) Delete(productType entity.ProductType) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.productUC.Delete(c.Request().Context(), productType, c.Param("id")); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
	}
}
