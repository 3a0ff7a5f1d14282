package console

import (
	"time"

	"creativehub/internal/domain/entity"
)

// ProductFields reads products for list pages.
func ProductFields() Fields[entity.Product] {
	return Fields[entity.Product]{
		ID:        func(p entity.Product) string { return p.ID },
		Search:    func(p entity.Product) []string { return append([]string{p.Title, p.Category}, p.Tags...) },
		Status:    func(p entity.Product) string { return string(p.Status) },
		Type:      func(p entity.Product) string { return string(p.Type) },
		CreatedAt: func(p entity.Product) time.Time { return p.CreatedAt },
		Price:     func(p entity.Product) float64 { return p.EffectivePrice() },
		Rating:    func(p entity.Product) float64 { return p.Rating },
	}
}

func CourseFields() Fields[entity.Course] {
	return Fields[entity.Course]{
		ID:        func(c entity.Course) string { return c.ID },
		Search:    func(c entity.Course) []string { return []string{c.Title, c.Instructor, c.Category} },
		Status:    func(c entity.Course) string { return string(c.Status) },
		Type:      func(c entity.Course) string { return c.Level },
		CreatedAt: func(c entity.Course) time.Time { return c.CreatedAt },
		Price:     func(c entity.Course) float64 { return entity.EffectivePrice(c.Price, c.SalePrice) },
		Rating:    func(c entity.Course) float64 { return c.Rating },
	}
}

func CategoryFields() Fields[entity.Category] {
	return Fields[entity.Category]{
		ID:        func(c entity.Category) string { return c.ID },
		Search:    func(c entity.Category) []string { return []string{c.Name, c.Slug} },
		Status:    func(c entity.Category) string { return string(c.Status) },
		Type:      func(c entity.Category) string { return c.Type },
		CreatedAt: func(c entity.Category) time.Time { return c.CreatedAt },
	}
}

func WebinarFields() Fields[entity.Webinar] {
	return Fields[entity.Webinar]{
		ID:        func(w entity.Webinar) string { return w.ID },
		Search:    func(w entity.Webinar) []string { return []string{w.Title, w.Host} },
		Status:    func(w entity.Webinar) string { return string(w.Status) },
		CreatedAt: func(w entity.Webinar) time.Time { return w.CreatedAt },
		Price:     func(w entity.Webinar) float64 { return w.Price },
	}
}

func ModuleFields() Fields[entity.Module] {
	return Fields[entity.Module]{
		ID:        func(m entity.Module) string { return m.ID },
		Search:    func(m entity.Module) []string { return []string{m.Title} },
		CreatedAt: func(m entity.Module) time.Time { return m.CreatedAt },
	}
}

func LessonFields() Fields[entity.Lesson] {
	return Fields[entity.Lesson]{
		ID:        func(l entity.Lesson) string { return l.ID },
		Search:    func(l entity.Lesson) []string { return []string{l.Title} },
		CreatedAt: func(l entity.Lesson) time.Time { return l.CreatedAt },
	}
}

// CertificateFields searches by holder, course and certificate number.
func CertificateFields() Fields[entity.Certificate] {
	return Fields[entity.Certificate]{
		ID: func(c entity.Certificate) string { return c.ID },
		Search: func(c entity.Certificate) []string {
			return []string{c.CertificateID, c.StudentName, c.CourseName}
		},
		Status:    func(c entity.Certificate) string { return string(c.Status) },
		CreatedAt: func(c entity.Certificate) time.Time { return c.CreatedAt },
	}
}

// UserFields filters users by role through the type filter.
func UserFields() Fields[entity.User] {
	return Fields[entity.User]{
		ID:        func(u entity.User) string { return u.ID },
		Search:    func(u entity.User) []string { return []string{u.FullName(), u.Email, u.Phone} },
		Status:    func(u entity.User) string { return string(u.Status) },
		Type:      func(u entity.User) string { return string(u.Role) },
		CreatedAt: func(u entity.User) time.Time { return u.CreatedAt },
	}
}
