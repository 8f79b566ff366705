package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/namdhoang/portfolio-hub/internal/config"
	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
)

const TopicProfileEvents = "profile.events"

// KafkaProducerClient publishes profile lifecycle events. Messages are keyed
// by profile id so events for one profile stay ordered within a partition.
type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
}

var _ profile.EventPublisher = (*KafkaProducerClient)(nil)

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ProfileEventsWriter: writer}, nil
}

func (c *KafkaProducerClient) Publish(ctx context.Context, ev profile.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal profile event: %w", err)
	}

	return c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.ProfileID.String()),
		Value: payload,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
}
