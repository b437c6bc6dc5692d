package reconciliation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cafepos/internal/payment/models"
	"cafepos/internal/platform/kafka"
)

type Reconciler interface {
	ReconcilePayment(ctx context.Context, paymentID string) error
}

// Worker drains an in-process inbox and reconciles each payment. Failures
// are logged; the event is not retried.
type Worker struct {
	reconciler Reconciler
	inbox      <-chan models.ReconciliationEvent
	logger     *slog.Logger
}

func NewWorker(reconciler Reconciler, inbox <-chan models.ReconciliationEvent, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Worker{reconciler: reconciler, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			w.handle(ctx, event)
		}
	}
}

func (w *Worker) handle(ctx context.Context, event models.ReconciliationEvent) {
	if err := w.reconciler.ReconcilePayment(ctx, event.PaymentID); err != nil {
		w.logger.ErrorContext(ctx, "payment reconciliation failed",
			"payment_id", event.PaymentID,
			"order_id", event.OrderID,
			"error", err,
		)
		return
	}
	w.logger.InfoContext(ctx, "payment reconciled", "payment_id", event.PaymentID, "order_id", event.OrderID)
}

// Handler adapts a Reconciler to Kafka records carrying ReconciliationEvents.
func Handler(reconciler Reconciler) kafka.Handler {
	return func(ctx context.Context, _, value []byte) error {
		var event models.ReconciliationEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return fmt.Errorf("decode reconciliation event: %w", err)
		}
		if event.PaymentID == "" {
			return fmt.Errorf("reconciliation event without payment id")
		}
		return reconciler.ReconcilePayment(ctx, event.PaymentID)
	}
}
