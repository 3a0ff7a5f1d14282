package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseModel mirrors the 'courses' collection.
type CourseModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description"`
	Instructor  string             `bson:"instructor"`
	Level       string             `bson:"level"`
	Duration    string             `bson:"duration"`
	Price       float64            `bson:"price"`
	SalePrice   *float64           `bson:"salePrice,omitempty"`
	Category    string             `bson:"category"`
	Tags        []string           `bson:"tags"`
	Status      string             `bson:"status"`
	Thumbnail   string             `bson:"thumbnail"`
	Rating      float64            `bson:"rating"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// ModuleModel mirrors the 'modules' collection; Course references courses._id.
type ModuleModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Course      primitive.ObjectID `bson:"course"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Order       int                `bson:"order"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// LessonModel mirrors the 'lessons' collection; Module references modules._id.
type LessonModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Module    primitive.ObjectID `bson:"module"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	VideoURL  string             `bson:"videoUrl"`
	Duration  int                `bson:"duration"`
	Order     int                `bson:"order"`
	IsPreview bool               `bson:"isPreview"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
