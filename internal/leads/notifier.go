package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// Notifier announces accepted leads.
type Notifier interface {
	Notify(ctx context.Context, lead Lead) error
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Lead) error { return nil }

// PubSubNotifier publishes each lead to a Pub/Sub topic.
type PubSubNotifier struct {
	topic   *pubsub.Topic
	marshal func(any) ([]byte, error)
}

// NewPubSubNotifier constructs a notifier over topic.
func NewPubSubNotifier(topic *pubsub.Topic) (*PubSubNotifier, error) {
	if topic == nil {
		return nil, errors.New("leads: pubsub topic is required")
	}
	return &PubSubNotifier{topic: topic, marshal: json.Marshal}, nil
}

// OpenTopic connects to Pub/Sub and returns the named topic. The caller stops the topic and
// closes the client on shutdown.
func OpenTopic(ctx context.Context, projectID, topicID, credentialsFile string) (*pubsub.Client, *pubsub.Topic, error) {
	projectID = strings.TrimSpace(projectID)
	topicID = strings.TrimSpace(topicID)
	if projectID == "" || topicID == "" {
		return nil, nil, errors.New("leads: pubsub project and topic are required")
	}
	var opts []option.ClientOption
	if path := strings.TrimSpace(credentialsFile); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("leads: pubsub client: %w", err)
	}
	return client, client.Topic(topicID), nil
}

// Notify publishes the lead and waits for the server acknowledgement.
func (n *PubSubNotifier) Notify(ctx context.Context, lead Lead) error {
	if n == nil || n.topic == nil {
		return errors.New("leads: pubsub notifier not initialised")
	}
	data, err := n.marshal(lead)
	if err != nil {
		return fmt.Errorf("leads: marshal lead: %w", err)
	}

	attrs := make(map[string]string)
	setAttr(attrs, "leadId", lead.ID)
	setAttr(attrs, "kind", string(lead.Kind))
	setAttr(attrs, "locale", lead.Locale)
	setAttr(attrs, "submissionId", lead.SubmissionID)

	result := n.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("leads: publish %s: %w", lead.ID, err)
	}
	return nil
}

func setAttr(attrs map[string]string, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		attrs[key] = v
	}
}
