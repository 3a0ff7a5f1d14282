package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CertificateModel mirrors the 'certificates' collection.
type CertificateModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CertificateID string             `bson:"certificateId"`
	StudentName   string             `bson:"studentName"`
	CourseName    string             `bson:"courseName"`
	CompletedAt   time.Time          `bson:"completedAt"`
	Status        string             `bson:"status"`
	RevokedAt     *time.Time         `bson:"revokedAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

// WebinarModel mirrors the 'webinars' collection.
type WebinarModel struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Slug            string             `bson:"slug"`
	Description     string             `bson:"description"`
	Host            string             `bson:"host"`
	ScheduledAt     time.Time          `bson:"scheduledAt"`
	DurationMinutes int                `bson:"durationMinutes"`
	Price           float64            `bson:"price"`
	Status          string             `bson:"status"`
	MeetingURL      string             `bson:"meetingUrl"`
	Thumbnail       string             `bson:"thumbnail"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}
