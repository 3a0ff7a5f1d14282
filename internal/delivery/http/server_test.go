package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creativehub/config"
	"creativehub/internal/delivery/http/middleware"
	"creativehub/internal/delivery/http/router"
	"creativehub/internal/delivery/http/router/handler"
	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	"creativehub/internal/infra/auth"
	mockUsecase "creativehub/internal/mocks/usecase"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

type apiFixture struct {
	e           *echo.Echo
	tokens      service.TokenService
	product     *mockUsecase.MockProductUsecase
	category    *mockUsecase.MockCategoryUsecase
	course      *mockUsecase.MockCourseUsecase
	certificate *mockUsecase.MockCertificateUsecase
	webinar     *mockUsecase.MockWebinarUsecase
	auth        *mockUsecase.MockAuthUsecase
	user        *mockUsecase.MockUserUsecase
	settings    *mockUsecase.MockSettingsUsecase
	activity    *mockUsecase.MockActivityUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixture{
		tokens:      tokens,
		product:     mockUsecase.NewMockProductUsecase(t),
		category:    mockUsecase.NewMockCategoryUsecase(t),
		course:      mockUsecase.NewMockCourseUsecase(t),
		certificate: mockUsecase.NewMockCertificateUsecase(t),
		webinar:     mockUsecase.NewMockWebinarUsecase(t),
		auth:        mockUsecase.NewMockAuthUsecase(t),
		user:        mockUsecase.NewMockUserUsecase(t),
		settings:    mockUsecase.NewMockSettingsUsecase(t),
		activity:    mockUsecase.NewMockActivityUsecase(t),
	}

	f.e = NewEcho(cfg, logger, middleware.NewErrorMiddleware(logger))
	router.NewRouter(router.RouterParams{
		ProductHandler:     handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.product}),
		CategoryHandler:    handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: f.category}),
		CourseHandler:      handler.NewCourseHandler(handler.CourseHandlerParams{CourseUC: f.course}),
		CertificateHandler: handler.NewCertificateHandler(handler.CertificateHandlerParams{CertificateUC: f.certificate}),
		WebinarHandler:     handler.NewWebinarHandler(handler.WebinarHandlerParams{WebinarUC: f.webinar}),
		AuthHandler:        handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.auth, Logger: logger}),
		UserHandler:        handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.user}),
		SettingsHandler:    handler.NewSettingsHandler(handler.SettingsHandlerParams{SettingsUC: f.settings}),
		ActivityHandler:    handler.NewActivityHandler(handler.ActivityHandlerParams{ActivityUC: f.activity}),
		AuthMiddleware:     middleware.NewAuthMiddleware(tokens),
	}).RegisterRoutes(f.e)

	return f
}

func (f *apiFixture) token(t *testing.T, userID string, role entity.Role) string {
	t.Helper()

	token, _, err := f.tokens.GenerateAccessToken(userID, role.String())
	require.NoError(t, err)

	return token
}

func (f *apiFixture) do(t *testing.T, method, target, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}

func TestProducts_ListIsPublicAndForwardsFilters(t *testing.T) {
	f := newAPIFixture(t)

	want := repository.ListFilter{Search: "icon", Status: "published", Limit: 10}
	f.product.On("List", mock.Anything, entity.ProductTypeGraphics, want).
		Return([]*entity.Product{{ID: "p1", Title: "Icon Pack", Type: entity.ProductTypeGraphics}}, nil).Once()

	rec, env := f.do(t, http.MethodGet, "/api/graphics?search=icon&status=published&limit=10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var products []entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestProducts_RejectsBadPaging(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/fonts?limit=-1", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestProducts_CreateAuthorization(t *testing.T) {
	body := `{"title":"Icon Pack","price":500,"salePrice":null,"tags":["icons"]}`

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, env := f.do(t, http.MethodPost, "/api/graphics", body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Authentication required", env.Message)
	})

	t.Run("buyer is forbidden", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, _ := f.do(t, http.MethodPost, "/api/graphics", body, f.token(t, "u1", entity.RoleBuyer))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("seller creates", func(t *testing.T) {
		f := newAPIFixture(t)

		f.product.On("Create", mock.Anything, entity.ProductTypeGraphics, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return in.Title == "Icon Pack" && in.Price == 500 && in.SalePrice == nil
		})).Return(&entity.Product{ID: "p9", Title: "Icon Pack"}, nil).Once()

		rec, env := f.do(t, http.MethodPost, "/api/graphics", body, f.token(t, "u2", entity.RoleSeller))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Product created successfully", env.Message)
	})

	t.Run("seller cannot write categories", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, _ := f.do(t, http.MethodPost, "/api/categories", `{"name":"Icons","type":"graphics"}`, f.token(t, "u2", entity.RoleSeller))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestProducts_CreateValidation(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/audio", `{"price":-3}`, f.token(t, "a1", entity.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "title is required")
}

func TestProducts_PatchCarriesExplicitNull(t *testing.T) {
	f := newAPIFixture(t)

	f.product.On("Update", mock.Anything, entity.ProductTypeUIKits, "p1", mock.MatchedBy(func(p *usecase.ProductPatch) bool {
		return p.SalePrice.Set && p.SalePrice.Value == nil && p.Title == nil
	})).Return(&entity.Product{ID: "p1"}, nil).Once()

	rec, _ := f.do(t, http.MethodPatch, "/api/ui-kits/p1", `{"salePrice":null}`, f.token(t, "a1", entity.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	f := newAPIFixture(t)

	f.product.On("Get", mock.Anything, entity.ProductTypePhotos, "missing").
		Return(nil, domainerrors.ErrProductNotFound).Once()
	f.product.On("Get", mock.Anything, entity.ProductTypePhotos, "broken").
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("socket closed"), "find product")).Once()

	rec, env := f.do(t, http.MethodGet, "/api/photos/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", env.Message)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)

	rec, env = f.do(t, http.MethodGet, "/api/photos/broken", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Empty(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "socket closed")

	rec, env = f.do(t, http.MethodGet, "/api/nothing-here", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestCourses_NestedRoutesAndCascadeDelete(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.token(t, "a1", entity.RoleAdmin)

	f.course.On("ListModulesByCourse", mock.Anything, "c1").
		Return([]*entity.Module{{ID: "m1", Course: "c1", Order: 1}}, nil).Once()
	f.course.On("ListLessonsByModule", mock.Anything, "m1").
		Return([]*entity.Lesson{}, nil).Once()
	f.course.On("DeleteCourse", mock.Anything, "c1").Return(nil).Once()

	rec, env := f.do(t, http.MethodGet, "/api/modules/course/c1", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"_id":"m1","course":"c1","title":"","description":"","order":1,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}]`, string(env.Data))

	rec, env = f.do(t, http.MethodGet, "/api/lessons/module/m1", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	rec, _ = f.do(t, http.MethodDelete, "/api/courses/c1", "", admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCertificates(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.token(t, "a1", entity.RoleAdmin)

	f.certificate.On("Verify", mock.Anything, "CH-2025-0A1B2C3D").
		Return(&usecase.CertificateVerification{Valid: true, Status: entity.CertificateActive}, nil).Once()
	f.certificate.On("Revoke", mock.Anything, "cert1").
		Return(nil, domainerrors.ErrCertificateAlreadyRevoked).Once()
	f.certificate.On("QRCode", mock.Anything, "cert1").Return([]byte("\x89PNG"), nil).Once()

	rec, _ := f.do(t, http.MethodGet, "/api/certificates", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "listing is admin only")

	rec, env := f.do(t, http.MethodGet, "/api/certificates/verify/CH-2025-0A1B2C3D", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true,"certificate":null,"status":"active"}`, string(env.Data))

	rec, env = f.do(t, http.MethodPatch, "/api/certificates/cert1/revoke", "", admin)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CERTIFICATE_ALREADY_REVOKED", env.Error.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/certificates/cert1/qrcode", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestAuth_Me(t *testing.T) {
	f := newAPIFixture(t)

	f.auth.On("Me", mock.Anything, "u7").Return(&entity.User{ID: "u7", Email: "ada@example.com", PasswordHash: "secret-hash"}, nil).Once()

	rec, _ := f.do(t, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env := f.do(t, http.MethodGet, "/api/auth/me", "", f.token(t, "u7", entity.RoleBuyer))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "ada@example.com")
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec = httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSettings_ReplaceSendsWholeMap(t *testing.T) {
	f := newAPIFixture(t)

	body := `{"lms":{"courses":true,"quizzes":true},"marketplace":{"reviews":false},"products":{"fonts":true}}`
	f.settings.On("ReplaceFeatureFlags", mock.Anything, mock.MatchedBy(func(flags entity.FeatureFlags) bool {
		return flags.Enabled("lms", "quizzes") && flags.Has("marketplace", "reviews") && len(flags) == 3
	})).Return(entity.DefaultFeatureFlags(), nil).Once()

	rec, _ := f.do(t, http.MethodPatch, "/api/settings/modules", body, f.token(t, "u1", entity.RoleSeller))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env := f.do(t, http.MethodPatch, "/api/settings/modules", body, f.token(t, "a1", entity.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Module settings saved", env.Message)
}

func TestActivity_AdminOnly(t *testing.T) {
	f := newAPIFixture(t)

	f.activity.On("List", mock.Anything, repository.ListFilter{Type: "courses"}).
		Return([]*entity.Activity{{ID: "a1", Resource: "courses", Action: service.ActionCreated}}, nil).Once()

	rec, _ := f.do(t, http.MethodGet, "/api/activity?type=courses", "", f.token(t, "u1", entity.RoleBuyer))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/activity?type=courses", "", f.token(t, "a1", entity.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}
