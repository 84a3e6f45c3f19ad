package confirm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	confirmationsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "railbook_confirmations_published_total",
		Help: "Total number of booking confirmations published to Kafka",
	})
	confirmationPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "railbook_confirmation_publish_failures_total",
		Help: "Total number of failed booking confirmation publishes",
	})
)

// KafkaPublisher emits confirmation records to a Kafka topic, keyed by
// session id so retried finalizes land in the same partition.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

// NewKafkaPublisher constructs a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &KafkaPublisher{client: client, topic: topic}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, c Confirmation) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode confirmation: %w", err)
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(c.SessionID),
		Value: payload,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		confirmationPublishFailures.Inc()
		return fmt.Errorf("publish confirmation: %w", err)
	}
	confirmationsPublished.Inc()
	return nil
}

// Close flushes buffered records and releases the client.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}
