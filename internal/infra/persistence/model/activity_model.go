package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityModel mirrors the 'activity' collection.
type ActivityModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	MessageID  string             `bson:"messageId"`
	RequestID  string             `bson:"requestId,omitempty"`
	Resource   string             `bson:"resource"`
	Action     string             `bson:"action"`
	ResourceID string             `bson:"resourceId"`
	OccurredAt time.Time          `bson:"occurredAt"`
	ReceivedAt time.Time          `bson:"receivedAt"`
}
