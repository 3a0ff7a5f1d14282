package entity

import "time"

// CategoryStatus controls whether a category is offered in the storefront.
type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "active"
	CategoryInactive CategoryStatus = "inactive"
)

// IsValid checks if the CategoryStatus is a valid value.
func (s CategoryStatus) IsValid() bool {
	return s == CategoryActive || s == CategoryInactive
}

// Category groups products of one type. Non-parent categories hang below a parent of the same type.
type Category struct {
	ID             string         `json:"_id"`
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	Type           string         `json:"type"`
	IsParent       bool           `json:"isParent"`
	ParentCategory *string        `json:"parentCategory"`
	Status         CategoryStatus `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CategoryTypeCourses is the category type used by the course catalogue.
const CategoryTypeCourses = "courses"

// IsCategoryType reports whether t names a catalogue categories can belong to.
func IsCategoryType(t string) bool {
	return t == CategoryTypeCourses || ProductType(t).IsValid()
}
