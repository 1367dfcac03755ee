package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wm_kafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/porchman/notification-api/internal/services/notifier"
	"github.com/porchman/notification-api/internal/services/trackingrepo"
)

const partitionKeyMetadata = "partition_key"

type Config struct {
	ClusterConfig   *sarama.Config
	BrokerAddresses []string
	Topic           string
}

// Publisher sends registration events to a Kafka topic.
type Publisher struct {
	publisher message.Publisher
	topic     string
}

func NewPublisher(cfg *Config) (*Publisher, error) {
	saramaPublisherConfig := wm_kafka.DefaultSaramaSyncPublisherConfig()
	if cfg.ClusterConfig != nil {
		saramaPublisherConfig.Version = cfg.ClusterConfig.Version
	}

	publisher, err := wm_kafka.NewPublisher(
		wm_kafka.PublisherConfig{
			Brokers:               cfg.BrokerAddresses,
			Marshaler:             wm_kafka.NewWithPartitioningMarshaler(partitionKey),
			OverwriteSaramaConfig: saramaPublisherConfig,
		},
		watermill.NewStdLogger(false, false),
	)
	if err != nil {
		return nil, err
	}

	return newPublisher(publisher, cfg.Topic), nil
}

func newPublisher(publisher message.Publisher, topic string) *Publisher {
	return &Publisher{
		publisher: publisher,
		topic:     topic,
	}
}

// Notify publishes the registration event for rec, keyed by its partition key
// so every event for a record lands on the same Kafka partition.
func (p *Publisher) Notify(ctx context.Context, rec trackingrepo.Record) error {
	msg, err := newMessage(ctx, rec)
	if err != nil {
		return err
	}
	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.publisher.Close()
}

func newMessage(ctx context.Context, rec trackingrepo.Record) (*message.Message, error) {
	event := notifier.NewRegisteredEvent(rec)
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration event: %w", err)
	}
	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set(partitionKeyMetadata, rec.PartitionKey)
	msg.Metadata.Set("ce_type", event.Type)
	msg.SetContext(ctx)
	return msg, nil
}

func partitionKey(_ string, msg *message.Message) (string, error) {
	return msg.Metadata.Get(partitionKeyMetadata), nil
}
