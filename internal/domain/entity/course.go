package entity

import "time"

// Course is a product-like entity that owns an ordered list of modules.
type Course struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Instructor  string        `json:"instructor"`
	Level       string        `json:"level"`
	Duration    string        `json:"duration"`
	Price       float64       `json:"price"`
	SalePrice   *float64      `json:"salePrice"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	Status      PublishStatus `json:"status"`
	Thumbnail   string        `json:"thumbnail"`
	Rating      float64       `json:"rating"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Module is an ordered section of a course.
type Module struct {
	ID          string    `json:"_id"`
	Course      string    `json:"course"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Lesson is an ordered unit of a module.
type Lesson struct {
	ID        string    `json:"_id"`
	Module    string    `json:"module"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	VideoURL  string    `json:"videoUrl"`
	Duration  int       `json:"duration"` // minutes
	Order     int       `json:"order"`
	IsPreview bool      `json:"isPreview"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
