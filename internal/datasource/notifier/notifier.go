// Package notifier delivers notifications. SMS, WhatsApp and e-mail are
// written to the structured log until a delivery vendor is wired; kitchen
// monitor messages are published on Redis when a client is configured.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"cafepos/internal/datasource"
	"cafepos/pkg/requestcontext"
)

// MonitorChannelPrefix is followed by the store id.
const MonitorChannelPrefix = "cafepos:monitor:"

// Publisher is the slice of *redis.Client used for monitor messages.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// MonitorMessage is the JSON payload published for kitchen monitors.
type MonitorMessage struct {
	StoreID string    `json:"store_id"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

type Notifier struct {
	logger    *slog.Logger
	publisher Publisher
}

var _ datasource.NotificationDataSource = (*Notifier)(nil)

type Option func(*Notifier)

func WithLogger(logger *slog.Logger) Option {
	return func(n *Notifier) {
		n.logger = logger
	}
}

// WithRedis routes monitor notifications through Redis PUBLISH.
func WithRedis(p Publisher) Option {
	return func(n *Notifier) {
		n.publisher = p
	}
}

func New(opts ...Option) *Notifier {
	n := &Notifier{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// MonitorChannel returns the pub/sub channel for a store's monitor.
func MonitorChannel(storeID string) string {
	return MonitorChannelPrefix + storeID
}

func (n *Notifier) SendSMSNotification(ctx context.Context, destination, message string) error {
	return n.logDelivery(ctx, "SMS", destination, message)
}

func (n *Notifier) SendWhatsappNotification(ctx context.Context, destination, message string) error {
	return n.logDelivery(ctx, "WHATSAPP", destination, message)
}

func (n *Notifier) SendEmailNotification(ctx context.Context, destination, message string) error {
	return n.logDelivery(ctx, "EMAIL", destination, message)
}

func (n *Notifier) SendMonitorNotification(ctx context.Context, storeID, message string) error {
	if n.publisher == nil {
		return n.logDelivery(ctx, "MONITOR", storeID, message)
	}
	payload, err := json.Marshal(MonitorMessage{StoreID: storeID, Message: message, SentAt: requestcontext.Now(ctx)})
	if err != nil {
		return fmt.Errorf("marshal monitor message: %w", err)
	}
	if err := n.publisher.Publish(ctx, MonitorChannel(storeID), payload).Err(); err != nil {
		return fmt.Errorf("publish monitor message: %w", err)
	}
	return nil
}

func (n *Notifier) logDelivery(ctx context.Context, channel, destination, message string) error {
	n.logger.InfoContext(ctx, "notification sent",
		"channel", channel,
		"destination", destination,
		"message", message,
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}
