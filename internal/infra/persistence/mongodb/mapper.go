package mongodb

import (
	"creativehub/internal/domain/entity"
	"creativehub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID.Hex(),
		Type:        entity.ProductType(m.Type),
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		Price:       m.Price,
		SalePrice:   m.SalePrice,
		Category:    m.Category,
		Tags:        nonNil(m.Tags),
		Status:      entity.PublishStatus(m.Status),
		Thumbnail:   m.Thumbnail,
		Rating:      m.Rating,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product, id primitive.ObjectID) *model.ProductModel {
	return &model.ProductModel{
		ID:          id,
		Type:        string(p.Type),
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		SalePrice:   p.SalePrice,
		Category:    p.Category,
		Tags:        nonNil(p.Tags),
		Status:      string(p.Status),
		Thumbnail:   p.Thumbnail,
		Rating:      p.Rating,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	c := &entity.Category{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Slug:      m.Slug,
		Type:      m.Type,
		IsParent:  m.IsParent,
		Status:    entity.CategoryStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.ParentCategory != nil {
		parent := m.ParentCategory.Hex()
		c.ParentCategory = &parent
	}

	return c
}

func fromCategoryDomain(c *entity.Category, id primitive.ObjectID) (*model.CategoryModel, error) {
	m := &model.CategoryModel{
		ID:        id,
		Name:      c.Name,
		Slug:      c.Slug,
		Type:      c.Type,
		IsParent:  c.IsParent,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.ParentCategory != nil && *c.ParentCategory != "" {
		parent, err := objectID(*c.ParentCategory)
		if err != nil {
			return nil, err
		}
		m.ParentCategory = &parent
	}

	return m, nil
}

func toCourseDomain(m *model.CourseModel) *entity.Course {
	return &entity.Course{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		Instructor:  m.Instructor,
		Level:       m.Level,
		Duration:    m.Duration,
		Price:       m.Price,
		SalePrice:   m.SalePrice,
		Category:    m.Category,
		Tags:        nonNil(m.Tags),
		Status:      entity.PublishStatus(m.Status),
		Thumbnail:   m.Thumbnail,
		Rating:      m.Rating,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromCourseDomain(c *entity.Course, id primitive.ObjectID) *model.CourseModel {
	return &model.CourseModel{
		ID:          id,
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
		Instructor:  c.Instructor,
		Level:       c.Level,
		Duration:    c.Duration,
		Price:       c.Price,
		SalePrice:   c.SalePrice,
		Category:    c.Category,
		Tags:        nonNil(c.Tags),
		Status:      string(c.Status),
		Thumbnail:   c.Thumbnail,
		Rating:      c.Rating,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toModuleDomain(m *model.ModuleModel) *entity.Module {
	return &entity.Module{
		ID:          m.ID.Hex(),
		Course:      m.Course.Hex(),
		Title:       m.Title,
		Description: m.Description,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromModuleDomain(mod *entity.Module, id primitive.ObjectID) (*model.ModuleModel, error) {
	course, err := objectID(mod.Course)
	if err != nil {
		return nil, err
	}

	return &model.ModuleModel{
		ID:          id,
		Course:      course,
		Title:       mod.Title,
		Description: mod.Description,
		Order:       mod.Order,
		CreatedAt:   mod.CreatedAt,
		UpdatedAt:   mod.UpdatedAt,
	}, nil
}

func toLessonDomain(m *model.LessonModel) *entity.Lesson {
	return &entity.Lesson{
		ID:        m.ID.Hex(),
		Module:    m.Module.Hex(),
		Title:     m.Title,
		Content:   m.Content,
		VideoURL:  m.VideoURL,
		Duration:  m.Duration,
		Order:     m.Order,
		IsPreview: m.IsPreview,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromLessonDomain(l *entity.Lesson, id primitive.ObjectID) (*model.LessonModel, error) {
	mod, err := objectID(l.Module)
	if err != nil {
		return nil, err
	}

	return &model.LessonModel{
		ID:        id,
		Module:    mod,
		Title:     l.Title,
		Content:   l.Content,
		VideoURL:  l.VideoURL,
		Duration:  l.Duration,
		Order:     l.Order,
		IsPreview: l.IsPreview,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}, nil
}

func toCertificateDomain(m *model.CertificateModel) *entity.Certificate {
	return &entity.Certificate{
		ID:            m.ID.Hex(),
		CertificateID: m.CertificateID,
		StudentName:   m.StudentName,
		CourseName:    m.CourseName,
		CompletedAt:   m.CompletedAt,
		Status:        entity.CertificateStatus(m.Status),
		RevokedAt:     m.RevokedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromCertificateDomain(c *entity.Certificate, id primitive.ObjectID) *model.CertificateModel {
	return &model.CertificateModel{
		ID:            id,
		CertificateID: c.CertificateID,
		StudentName:   c.StudentName,
		CourseName:    c.CourseName,
		CompletedAt:   c.CompletedAt,
		Status:        string(c.Status),
		RevokedAt:     c.RevokedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toWebinarDomain(m *model.WebinarModel) *entity.Webinar {
	return &entity.Webinar{
		ID:              m.ID.Hex(),
		Title:           m.Title,
		Slug:            m.Slug,
		Description:     m.Description,
		Host:            m.Host,
		ScheduledAt:     m.ScheduledAt,
		DurationMinutes: m.DurationMinutes,
		Price:           m.Price,
		Status:          entity.PublishStatus(m.Status),
		MeetingURL:      m.MeetingURL,
		Thumbnail:       m.Thumbnail,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromWebinarDomain(w *entity.Webinar, id primitive.ObjectID) *model.WebinarModel {
	return &model.WebinarModel{
		ID:              id,
		Title:           w.Title,
		Slug:            w.Slug,
		Description:     w.Description,
		Host:            w.Host,
		ScheduledAt:     w.ScheduledAt,
		DurationMinutes: w.DurationMinutes,
		Price:           w.Price,
		Status:          string(w.Status),
		MeetingURL:      w.MeetingURL,
		Thumbnail:       w.Thumbnail,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Phone:        m.Phone,
		Role:         entity.Role(m.Role),
		Status:       entity.UserStatus(m.Status),
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User, id primitive.ObjectID) *model.UserModel {
	return &model.UserModel{
		ID:        id,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Status:    string(u.Status),
		Password:  u.PasswordHash,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func toActivityDomain(m *model.ActivityModel) *entity.Activity {
	return &entity.Activity{
		ID:         m.ID.Hex(),
		MessageID:  m.MessageID,
		RequestID:  m.RequestID,
		Resource:   m.Resource,
		Action:     m.Action,
		ResourceID: m.ResourceID,
		OccurredAt: m.OccurredAt,
		ReceivedAt: m.ReceivedAt,
	}
}
