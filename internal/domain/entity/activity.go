package entity

import "time"

// Activity is one recorded resource change, as delivered by the event bus.
type Activity struct {
	ID         string    `json:"_id"`
	MessageID  string    `json:"messageId"`
	RequestID  string    `json:"requestId,omitempty"`
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resourceId"`
	OccurredAt time.Time `json:"occurredAt"`
	ReceivedAt time.Time `json:"receivedAt"`
}
