// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"creativehub/internal/delivery/http/middleware"
	"creativehub/internal/delivery/http/router/handler"
	"creativehub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler     *handler.ProductHandler
	CategoryHandler    *handler.CategoryHandler
	CourseHandler      *handler.CourseHandler
	CertificateHandler *handler.CertificateHandler
	WebinarHandler     *handler.WebinarHandler
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	SettingsHandler    *handler.SettingsHandler
	ActivityHandler    *handler.ActivityHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	product     *handler.ProductHandler
	category    *handler.CategoryHandler
	course      *handler.CourseHandler
	certificate *handler.CertificateHandler
	webinar     *handler.WebinarHandler
	auth        *handler.AuthHandler
	user        *handler.UserHandler
	settings    *handler.SettingsHandler
	activity    *handler.ActivityHandler
	mw          *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		product:     params.ProductHandler,
		category:    params.CategoryHandler,
		course:      params.CourseHandler,
		certificate: params.CertificateHandler,
		webinar:     params.WebinarHandler,
		auth:        params.AuthHandler,
		user:        params.UserHandler,
		settings:    params.SettingsHandler,
		activity:    params.ActivityHandler,
		mw:          params.AuthMiddleware,
	}
}

// crud is the handler set of one conventional REST collection.
type crud struct {
	list, get, create, update, remove echo.HandlerFunc
}

// mount registers GET/POST on the collection and GET/PATCH/PUT/DELETE on /:id.
// Reads are public unless readGuard is set; writes always pass writeGuard.
func mount(g *echo.Group, h crud, readGuard, writeGuard []echo.MiddlewareFunc) {
	g.GET("", h.list, readGuard...)
	g.GET("/:id", h.get, readGuard...)
	g.POST("", h.create, writeGuard...)
	g.PATCH("/:id", h.update, writeGuard...)
	g.PUT("/:id", h.update, writeGuard...)
	g.DELETE("/:id", h.remove, writeGuard...)
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	adminOnly := r.mw.Protect(entity.RoleAdmin)
	catalogueWriters := r.mw.Protect(entity.RoleAdmin, entity.RoleSeller)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.GET("/me", r.auth.Me, r.mw.Authenticate)
	}

	for _, t := range entity.ProductTypes() {
		mount(api.Group("/"+string(t)), crud{
			list:   r.product.List(t),
			get:    r.product.Get(t),
			create: r.product.Create(t),
			update: r.product.Update(t),
			remove: r.product.Delete(t),
		}, nil, catalogueWriters)
	}

	mount(api.Group("/categories"), crud{
		list: r.category.List, get: r.category.Get, create: r.category.Create,
		update: r.category.Update, remove: r.category.Delete,
	}, nil, adminOnly)

	mount(api.Group("/courses"), crud{
		list: r.course.ListCourses, get: r.course.GetCourse, create: r.course.CreateCourse,
		update: r.course.UpdateCourse, remove: r.course.DeleteCourse,
	}, nil, adminOnly)

	modules := api.Group("/modules")
	modules.GET("/course/:courseId", r.course.ListModulesByCourse)
	mount(modules, crud{
		list: r.course.ListModules, get: r.course.GetModule, create: r.course.CreateModule,
		update: r.course.UpdateModule, remove: r.course.DeleteModule,
	}, nil, adminOnly)

	lessons := api.Group("/lessons")
	lessons.GET("/module/:moduleId", r.course.ListLessonsByModule)
	mount(lessons, crud{
		list: r.course.ListLessons, get: r.course.GetLesson, create: r.course.CreateLesson,
		update: r.course.UpdateLesson, remove: r.course.DeleteLesson,
	}, nil, adminOnly)

	certificates := api.Group("/certificates")
	certificates.GET("/verify/:certificateId", r.certificate.Verify)
	certificates.GET("/:id/qrcode", r.certificate.QRCode)
	certificates.PATCH("/:id/revoke", r.certificate.Revoke, adminOnly...)
	mount(certificates, crud{
		list: r.certificate.List, get: r.certificate.Get, create: r.certificate.Create,
		update: r.certificate.Update, remove: r.certificate.Delete,
	}, adminOnly, adminOnly)

	mount(api.Group("/webinars"), crud{
		list: r.webinar.List, get: r.webinar.Get, create: r.webinar.Create,
		update: r.webinar.Update, remove: r.webinar.Delete,
	}, nil, adminOnly)

	mount(api.Group("/users"), crud{
		list: r.user.List, get: r.user.Get, create: r.user.Create,
		update: r.user.Update, remove: r.user.Delete,
	}, adminOnly, adminOnly)

	settings := api.Group("/settings")
	{
		settings.GET("/modules", r.settings.GetModules)
		settings.PATCH("/modules", r.settings.ReplaceModules, adminOnly...)
		settings.PUT("/modules", r.settings.ReplaceModules, adminOnly...)
	}

	api.GET("/activity", r.activity.List, adminOnly...)
}
