// Package model holds the document shapes stored in MongoDB.
// They are kept apart from domain entities so bson concerns never leak upward.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductModel is stored once per product type collection (graphics, audio, ...).
type ProductModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Type        string             `bson:"type"`
	Title       string             `bson:"title"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description"`
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

// CategoryModel mirrors the 'categories' collection.
type CategoryModel struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	Name           string              `bson:"name"`
	Slug           string              `bson:"slug"`
	Type           string              `bson:"type"`
	IsParent       bool                `bson:"isParent"`
	ParentCategory *primitive.ObjectID `bson:"parentCategory,omitempty"`
	Status         string              `bson:"status"`
	CreatedAt      time.Time           `bson:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt"`
}
