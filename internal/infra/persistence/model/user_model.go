package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors the 'users' collection. Email is stored lowercased and unique.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Role      string             `bson:"role"`
	Status    string             `bson:"status"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// SettingsModel is a keyed singleton document in the 'settings' collection.
type SettingsModel struct {
	Key       string                     `bson:"_id"`
	Modules   map[string]map[string]bool `bson:"modules"`
	UpdatedAt time.Time                  `bson:"updatedAt"`
}
