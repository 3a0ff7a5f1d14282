package http

import (
	"creativehub/internal/delivery/http/middleware"
	"creativehub/internal/delivery/http/router/handler"

	"go.uber.org/fx"
)

// Module provides the REST API server, its middleware and handlers.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		middleware.NewAuthMiddleware,
		middleware.NewErrorMiddleware,
		handler.NewProductHandler,
		handler.NewCategoryHandler,
		handler.NewCourseHandler,
		handler.NewCertificateHandler,
		handler.NewWebinarHandler,
		handler.NewAuthHandler,
		handler.NewUserHandler,
		handler.NewSettingsHandler,
		handler.NewActivityHandler,
		fx.Annotate(
			NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)
