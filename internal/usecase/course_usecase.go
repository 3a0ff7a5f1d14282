package usecase

import (
	"context"
	"time"

	"creativehub/internal/domain/entity"
	"creativehub/internal/domain/repository"
)

// CourseInput is the body of POST /api/courses.
type CourseInput struct {
	Title       string   `json:"title" validate:"required,min=2"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor" validate:"required"`
	Level       string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration    string   `json:"duration"`
	Price       float64  `json:"price" validate:"gte=0"`
	SalePrice   *float64 `json:"salePrice" validate:"omitempty,gte=0"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft pending published"`
	Thumbnail   string   `json:"thumbnail"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
}

// CoursePatch is the body of PATCH /api/courses/:id.
type CoursePatch struct {
	Title       *string       `json:"title" validate:"omitempty,min=2"`
	Slug        *string       `json:"slug"`
	Description *string       `json:"description"`
	Instructor  *string       `json:"instructor"`
	Level       *string       `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration    *string       `json:"duration"`
	Price       *float64      `json:"price" validate:"omitempty,gte=0"`
	SalePrice   NullableFloat `json:"salePrice"`
	Category    *string       `json:"category"`
	Tags        []string      `json:"tags"`
	Status      *string       `json:"status" validate:"omitempty,oneof=draft pending published"`
	Thumbnail   *string       `json:"thumbnail"`
	Rating      *float64      `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// ModuleInput is the body of POST /api/modules.
type ModuleInput struct {
	Course      string `json:"course" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order" validate:"gte=0"`
}

// ModulePatch is the body of PATCH /api/modules/:id. A module cannot move between courses.
type ModulePatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Order       *int    `json:"order" validate:"omitempty,gte=0"`
}

// LessonInput is the body of POST /api/lessons.
type LessonInput struct {
	Module    string `json:"module" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content"`
	VideoURL  string `json:"videoUrl" validate:"omitempty,url"`
	Duration  int    `json:"duration" validate:"gte=0"`
	Order     int    `json:"order" validate:"gte=0"`
	IsPreview bool   `json:"isPreview"`
}

// LessonPatch is the body of PATCH /api/lessons/:id.
type LessonPatch struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Content   *string `json:"content"`
	VideoURL  *string `json:"videoUrl" validate:"omitempty,url"`
	Duration  *int    `json:"duration" validate:"omitempty,gte=0"`
	Order     *int    `json:"order" validate:"omitempty,gte=0"`
	IsPreview *bool   `json:"isPreview"`
}

// CourseUsecase manages courses together with their modules and lessons.
// Deleting a course removes its modules and their lessons.
type CourseUsecase interface {
	ListCourses(ctx context.Context, filter repository.ListFilter) ([]*entity.Course, error)
	GetCourse(ctx context.Context, id string) (*entity.Course, error)
	CreateCourse(ctx context.Context, input *CourseInput) (*entity.Course, error)
	UpdateCourse(ctx context.Context, id string, patch *CoursePatch) (*entity.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	ListModules(ctx context.Context, filter repository.ListFilter) ([]*entity.Module, error)
	ListModulesByCourse(ctx context.Context, courseID string) ([]*entity.Module, error)
	GetModule(ctx context.Context, id string) (*entity.Module, error)
	CreateModule(ctx context.Context, input *ModuleInput) (*entity.Module, error)
	UpdateModule(ctx context.Context, id string, patch *ModulePatch) (*entity.Module, error)
	DeleteModule(ctx context.Context, id string) error

	ListLessons(ctx context.Context, filter repository.ListFilter) ([]*entity.Lesson, error)
	ListLessonsByModule(ctx context.Context, moduleID string) ([]*entity.Lesson, error)
	GetLesson(ctx context.Context, id string) (*entity.Lesson, error)
	CreateLesson(ctx context.Context, input *LessonInput) (*entity.Lesson, error)
	UpdateLesson(ctx context.Context, id string, patch *LessonPatch) (*entity.Lesson, error)
	DeleteLesson(ctx context.Context, id string) error
}

// CertificateInput is the body of POST /api/certificates. CertificateID is generated when empty.
type CertificateInput struct {
	CertificateID string    `json:"certificateId"`
	StudentName   string    `json:"studentName" validate:"required"`
	CourseName    string    `json:"courseName" validate:"required"`
	CompletedAt   time.Time `json:"completedAt"`
}

// CertificatePatch is the body of PATCH /api/certificates/:id. Status is changed only through Revoke.
type CertificatePatch struct {
	StudentName *string    `json:"studentName" validate:"omitempty,min=1"`
	CourseName  *string    `json:"courseName" validate:"omitempty,min=1"`
	CompletedAt *time.Time `json:"completedAt"`
}

// CertificateVerification is the public answer to a verification lookup.
type CertificateVerification struct {
	Valid       bool                     `json:"valid"`
	Certificate *entity.Certificate      `json:"certificate"`
	Status      entity.CertificateStatus `json:"status"`
}

// CertificateUsecase manages issued certificates.
type CertificateUsecase interface {
	List(ctx context.Context, filter repository.ListFilter) ([]*entity.Certificate, error)
	Get(ctx context.Context, id string) (*entity.Certificate, error)
	Create(ctx context.Context, input *CertificateInput) (*entity.Certificate, error)
	Update(ctx context.Context, id string, patch *CertificatePatch) (*entity.Certificate, error)
	Delete(ctx context.Context, id string) error
	// Revoke is one-way; revoking twice is a conflict.
	Revoke(ctx context.Context, id string) (*entity.Certificate, error)
	Verify(ctx context.Context, certificateID string) (*CertificateVerification, error)
	// QRCode renders the verification QR for the certificate with document id id.
	QRCode(ctx context.Context, id string) ([]byte, error)
}
