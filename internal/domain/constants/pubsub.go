package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Attribute keys attached to published resource events.
const (
	AttrResource   = "resource"
	AttrAction     = "action"
	AttrResourceID = "resource_id"
	AttrRequestID  = "request_id"
)
