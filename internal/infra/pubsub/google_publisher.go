package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"creativehub/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type topicPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", name)
	}

	return &topicPublisher{
		client: client,
		topic:  client.Publisher(topicID),
		logger: logger,
	}, nil
}

// PublishResourceEvent blocks until the server acknowledges the message.
func (p *topicPublisher) PublishResourceEvent(ctx context.Context, event *service.ResourceEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode resource event")
	}

	serverID, err := p.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s %s", event.Resource, event.Action)
	}

	p.logger.DebugContext(ctx, "Resource event published",
		slog.String("resource", event.Resource),
		slog.String("action", event.Action),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *topicPublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
