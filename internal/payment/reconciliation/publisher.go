// Package reconciliation carries ReconciliationEvents from the payment use
// cases to a worker that re-drives the order step, either through Kafka or
// an in-process queue.
package reconciliation

import (
	"context"
	"errors"
	"fmt"

	"cafepos/internal/payment/models"
)

var ErrQueueFull = errors.New("reconciliation queue full")

// JSONProducer is satisfied by *kafka.Producer.
type JSONProducer interface {
	PublishJSON(ctx context.Context, key string, value any) error
}

// KafkaPublisher produces events keyed by payment id, so every event for a
// payment lands on the same partition.
type KafkaPublisher struct {
	producer JSONProducer
}

func NewKafkaPublisher(producer JSONProducer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

func (p *KafkaPublisher) PublishReconciliation(ctx context.Context, event models.ReconciliationEvent) error {
	if err := p.producer.PublishJSON(ctx, event.PaymentID, event); err != nil {
		return fmt.Errorf("publish reconciliation for payment %s: %w", event.PaymentID, err)
	}
	return nil
}

// ChannelPublisher queues events in memory for a Worker in the same process.
type ChannelPublisher struct {
	queue chan models.ReconciliationEvent
}

func NewChannelPublisher(size int) *ChannelPublisher {
	return &ChannelPublisher{queue: make(chan models.ReconciliationEvent, size)}
}

// PublishReconciliation never blocks; a full queue returns ErrQueueFull.
func (p *ChannelPublisher) PublishReconciliation(_ context.Context, event models.ReconciliationEvent) error {
	select {
	case p.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Events is the worker's inbox.
func (p *ChannelPublisher) Events() <-chan models.ReconciliationEvent {
	return p.queue
}
