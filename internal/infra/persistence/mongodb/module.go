package mongodb

import "go.uber.org/fx"

// Module provides the database handle and every repository.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewProductRepository,
		NewCategoryRepository,
		NewCourseRepository,
		NewModuleRepository,
		NewLessonRepository,
		NewCertificateRepository,
		NewWebinarRepository,
		NewUserRepository,
		NewSettingsRepository,
		NewActivityRepository,
	),
)
