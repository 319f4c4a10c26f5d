package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

type fetchClient interface {
	PollFetches(ctx context.Context) kgo.Fetches
	Close()
}

// Handler processes one record. Errors are logged by the caller and the
// record is skipped.
type Handler func(ctx context.Context, key, value []byte) error

type Consumer struct {
	client fetchClient
	topic  string
	log    *slog.Logger
	done   chan struct{}
}

func NewConsumer(brokers []string, topic, group string, log *slog.Logger) (*Consumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumerGroup(group),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtEnd()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}
	log.Info("Kafka consumer initialized", "topic", topic, "group", group)
	return NewConsumerWithClient(client, topic, log), nil
}

func NewConsumerWithClient(client fetchClient, topic string, log *slog.Logger) *Consumer {
	return &Consumer{client: client, topic: topic, log: log, done: make(chan struct{})}
}

// Start polls until ctx is cancelled or the client is closed.
func (c *Consumer) Start(ctx context.Context, handler Handler) {
	go func() {
		defer close(c.done)
		for {
			fetches := c.client.PollFetches(ctx)
			if ctx.Err() != nil || fetches.IsClientClosed() {
				return
			}
			for _, fe := range fetches.Errors() {
				c.log.WarnContext(ctx, "Kafka fetch error", "topic", fe.Topic, "partition", fe.Partition, "error", fe.Err)
			}

			iter := fetches.RecordIter()
			for !iter.Done() {
				record := iter.Next()
				if err := handler(ctx, record.Key, record.Value); err != nil {
					c.log.WarnContext(ctx, "Skipping Kafka record", "topic", c.topic, "key", string(record.Key), "error", err)
				}
			}
		}
	}()
}

// Stop closes the client and waits for the poll loop to exit. Call it only
// after Start.
func (c *Consumer) Stop() {
	c.client.Close()
	<-c.done
}
