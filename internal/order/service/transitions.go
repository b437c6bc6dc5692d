package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	notificationmodels "cafepos/internal/notification/models"
	"cafepos/internal/order/models"
	"cafepos/internal/platform/tracing"
	"cafepos/pkg/requestcontext"
)

// SetOrderToReceived moves a PENDING order to RECEIVED, normally after its
// payment was approved.
func (s *Service) SetOrderToReceived(ctx context.Context, orderID, storeID string) (*models.Order, error) {
	return s.transition(ctx, "SetOrderToReceived", orderID, storeID, models.StatusReceived)
}

func (s *Service) SetOrderToInPreparation(ctx context.Context, orderID, storeID string) (*models.Order, error) {
	return s.transition(ctx, "SetOrderToInPreparation", orderID, storeID, models.StatusInPreparation)
}

// SetOrderToFinished also tells the customer, when there is one, that the
// order is ready.
func (s *Service) SetOrderToFinished(ctx context.Context, orderID, storeID string) (*models.Order, error) {
	return s.transition(ctx, "SetOrderToFinished", orderID, storeID, models.StatusFinished)
}

func (s *Service) SetOrderToCanceled(ctx context.Context, orderID, storeID string) (*models.Order, error) {
	return s.transition(ctx, "SetOrderToCanceled", orderID, storeID, models.StatusCanceled)
}

func (s *Service) transition(ctx context.Context, useCase, orderID, storeID string, next models.Status) (_ *models.Order, err error) {
	defer s.metrics.ObserveUseCase(useCase, time.Now())
	ctx, span := tracing.Start(ctx, "order."+useCase,
		attribute.String("order.id", orderID),
		attribute.String("store.id", storeID),
	)
	defer func() { tracing.End(span, err) }()

	order, err := s.FindOrderByID(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}
	from := order.Status()
	if err = order.CanTransitionTo(next); err != nil {
		return nil, err
	}
	order.ApplyTransition(next, requestcontext.Now(ctx))
	if err = s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.logEvent(ctx, eventOrderTransition,
		"order_id", orderID,
		"store_id", storeID,
		"from", from.Label(),
		"to", next.Label(),
	)
	s.metrics.IncrementOrderTransition(next.Label())
	s.notifyMonitor(ctx, order)
	if next == models.StatusFinished {
		s.notifyCustomer(ctx, order)
	}
	return order, nil
}

func (s *Service) notifyMonitor(ctx context.Context, order *models.Order) {
	s.send(ctx, notificationmodels.ChannelMonitor, order.StoreID(),
		fmt.Sprintf("Order %s is %s", order.ID(), order.Status().Label()))
}

func (s *Service) notifyCustomer(ctx context.Context, order *models.Order) {
	if s.notifier == nil || order.CustomerID() == "" {
		return
	}
	customer, err := s.customers.FindCustomerByID(ctx, order.CustomerID())
	if err != nil {
		s.warn(ctx, "customer lookup for notification failed", err, "order_id", order.ID())
		return
	}
	s.send(ctx, notificationmodels.ChannelEmail, customer.Email().String(),
		fmt.Sprintf("%s, your order %s is ready", customer.Name(), order.ID()))
}

// send delivers best-effort: failures are logged and counted, never returned.
func (s *Service) send(ctx context.Context, channel notificationmodels.Channel, destination, message string) {
	if s.notifier == nil {
		return
	}
	n, err := notificationmodels.NewNotification(channel, destination, message)
	if err == nil {
		err = s.notifier.Send(ctx, n)
	}
	if err != nil {
		s.metrics.IncrementNotificationFailures(string(channel))
		s.warn(ctx, "notification failed", err, "channel", string(channel))
	}
}

func (s *Service) warn(ctx context.Context, msg string, err error, attributes ...any) {
	if s.logger != nil {
		s.logger.WarnContext(ctx, msg, append(attributes, "error", err)...)
	}
}
