package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Producer writes booking lifecycle events. In mock mode (local dev,
// tests) nothing is written and Publish always succeeds.
type Producer struct {
	writer *kafka.Writer
	mock   bool
}

func NewProducer(brokers []string, mockMode bool) *Producer {
	if mockMode {
		return &Producer{mock: true}
	}
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, value []byte) error {
	if p.mock {
		fmt.Printf("Kafka (mock) [%s] key=%s: %s\n", topic, key, string(value))
		return nil
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
