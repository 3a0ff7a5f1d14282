package handler

import (
	"net/http"

	"creativehub/internal/delivery/http/response"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CertificateHandlerParams holds dependencies for CertificateHandler, injected by Fx.
type CertificateHandlerParams struct {
	fx.In

	CertificateUC usecase.CertificateUsecase
}

// CertificateHandler serves /api/certificates.
type CertificateHandler struct {
	certificateUC usecase.CertificateUsecase
}

// NewCertificateHandler is the constructor for CertificateHandler.
func NewCertificateHandler(params CertificateHandlerParams) *CertificateHandler {
	return &CertificateHandler{certificateUC: params.CertificateUC}
}

func (h *CertificateHandler) List(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}

	certificates, err := h.certificateUC.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, certificates)
}

func (h *CertificateHandler) Get(c echo.Context) error {
	certificate, err := h.certificateUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, certificate)
}

func (h *CertificateHandler) Create(c echo.Context) error {
	var input usecase.CertificateInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	certificate, err := h.certificateUC.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, certificate, "Certificate issued successfully")
}

func (h *CertificateHandler) Update(c echo.Context) error {
	var patch usecase.CertificatePatch
	if err := bindAndValidate(c, &patch); err != nil {
		return err
	}

	certificate, err := h.certificateUC.Update(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, certificate, "Certificate updated successfully")
}

func (h *CertificateHandler) Delete(c echo.Context) error {
	if err := h.certificateUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Certificate deleted successfully")
}

// Revoke handles PATCH /api/certificates/:id/revoke.
func (h *CertificateHandler) Revoke(c echo.Context) error {
	certificate, err := h.certificateUC.Revoke(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, certificate, "Certificate revoked")
}

// Verify handles the public GET /api/certificates/verify/:certificateId.
func (h *CertificateHandler) Verify(c echo.Context) error {
	verification, err := h.certificateUC.Verify(c.Request().Context(), c.Param("certificateId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, verification)
}

// QRCode handles GET /api/certificates/:id/qrcode and returns a PNG.
func (h *CertificateHandler) QRCode(c echo.Context) error {
	png, err := h.certificateUC.QRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
