package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"weather-service/internal/metrics"

	"github.com/twmb/franz-go/pkg/kgo"
)

const publishTimeout = 10 * time.Second

type produceClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// Producer publishes fresh observations keyed by cache key.
type Producer struct {
	topic   string
	client  produceClient
	log     *slog.Logger
	metrics *metrics.Metrics
	wg      sync.WaitGroup
}

func NewProducer(brokers []string, topic string, log *slog.Logger, m *metrics.Metrics) (*Producer, error) {
	client, err := kgo.NewClient(kgo.SeedBrokers(brokers...))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	log.Info("Kafka producer initialized", "topic", topic, "brokers", brokers)
	return NewProducerWithClient(client, topic, log, m), nil
}

func NewProducerWithClient(client produceClient, topic string, log *slog.Logger, m *metrics.Metrics) *Producer {
	return &Producer{topic: topic, client: client, log: log, metrics: m}
}

func (p *Producer) Publish(ctx context.Context, key, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	record := &kgo.Record{Topic: p.topic, Key: key, Value: value}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		p.metrics.FeedPublished.WithLabelValues("out", "error").Inc()
		return fmt.Errorf("kafka publish to %s: %w", p.topic, err)
	}

	p.metrics.FeedPublished.WithLabelValues("out", "ok").Inc()
	p.log.Debug("Published observation", "topic", p.topic, "key", string(key))
	return nil
}

// PublishAsync publishes in the background and only logs failures.
func (p *Producer) PublishAsync(key, value []byte) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.Publish(context.Background(), key, value); err != nil {
			p.log.Warn("Kafka async publish failed", "key", string(key), "error", err)
		}
	}()
}

// Close waits for in-flight async publishes, then closes the client.
func (p *Producer) Close() {
	p.wg.Wait()
	p.client.Close()
}
