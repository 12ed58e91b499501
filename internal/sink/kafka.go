package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/gyaneshwarpardhi/banksynth/internal/metrics"
	"github.com/gyaneshwarpardhi/banksynth/internal/record"
)

// Kafka publishes synthetic events to a single topic.
type Kafka struct {
	client *kgo.Client
	topic  string
}

// NewKafka connects a producer to the given brokers.
func NewKafka(brokers []string, topic string) (*Kafka, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &Kafka{client: client, topic: topic}, nil
}

// Publish sends one event, keyed by source system so consumers can
// partition by upstream.
func (k *Kafka) Publish(ctx context.Context, rec record.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	kr := &kgo.Record{Key: []byte(rec.Common().SourceSystem), Value: payload}
	if err := k.client.ProduceSync(ctx, kr).FirstErr(); err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("produce to %s: %w", k.topic, err)
	}
	metrics.EventsPublished.WithLabelValues("ok").Inc()
	return nil
}

// Close flushes and shuts down the producer.
func (k *Kafka) Close() {
	k.client.Close()
}
