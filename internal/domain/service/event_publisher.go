package service

import (
	"context"
	"time"
)

// Resource change actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ResourceEvent announces a change to a catalogue document so downstream consumers
// (storefront cache, search index) can refresh.
type ResourceEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resource_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishResourceEvent publishes a change event for async processing
	PublishResourceEvent(ctx context.Context, event *ResourceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
