package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	ordermodels "cafepos/internal/order/models"
	"cafepos/internal/payment/models"
	"cafepos/internal/platform/tracing"
	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/requestcontext"
)

// ApprovePayment settles a PENDING payment as APPROVED and marks its order
// RECEIVED. The payment write is kept even when the order step fails; that
// error is returned as-is and a reconciliation is requested.
func (s *Service) ApprovePayment(ctx context.Context, paymentID string) (_ *models.Payment, err error) {
	defer s.metrics.ObserveUseCase("ApprovePayment", time.Now())
	ctx, span := tracing.Start(ctx, "payment.ApprovePayment", attribute.String("payment.id", paymentID))
	defer func() { tracing.End(span, err) }()

	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if err = payment.CanApprove(); err != nil {
		return nil, err
	}
	payment.ApplyApproval(requestcontext.Now(ctx))
	if err = s.payments.Save(ctx, payment); err != nil {
		return nil, err
	}
	s.logEvent(ctx, eventPaymentApproved, "payment_id", payment.ID(), "order_id", payment.OrderID())
	s.metrics.IncrementPaymentsSettled(string(models.StatusApproved))

	if _, err = s.orders.SetOrderToReceived(ctx, payment.OrderID(), payment.StoreID()); err != nil {
		s.requestReconciliation(ctx, payment, err)
		return nil, err
	}
	return payment, nil
}

// CancelPayment settles a PENDING payment as REFUSED and cancels its order,
// with the same partial-failure handling as ApprovePayment.
func (s *Service) CancelPayment(ctx context.Context, paymentID string) (_ *models.Payment, err error) {
	defer s.metrics.ObserveUseCase("CancelPayment", time.Now())
	ctx, span := tracing.Start(ctx, "payment.CancelPayment", attribute.String("payment.id", paymentID))
	defer func() { tracing.End(span, err) }()

	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if err = payment.CanRefuse(); err != nil {
		return nil, err
	}
	payment.ApplyRefusal(requestcontext.Now(ctx))
	if err = s.payments.Save(ctx, payment); err != nil {
		return nil, err
	}
	s.logEvent(ctx, eventPaymentRefused, "payment_id", payment.ID(), "order_id", payment.OrderID())
	s.metrics.IncrementPaymentsSettled(string(models.StatusRefused))

	if _, err = s.orders.SetOrderToCanceled(ctx, payment.OrderID(), payment.StoreID()); err != nil {
		s.requestReconciliation(ctx, payment, err)
		return nil, err
	}
	return payment, nil
}

// ReconcilePayment re-drives the order step of a settled payment. It is
// idempotent: an order already in the expected state is left alone.
func (s *Service) ReconcilePayment(ctx context.Context, paymentID string) (err error) {
	defer s.metrics.ObserveUseCase("ReconcilePayment", time.Now())
	ctx, span := tracing.Start(ctx, "payment.ReconcilePayment", attribute.String("payment.id", paymentID))
	defer func() { tracing.End(span, err) }()

	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if !payment.Status().IsTerminal() {
		return dErrors.New(dErrors.CodeConflict, "Payment must be settled to be reconciled")
	}
	order, err := s.orders.FindOrderByID(ctx, payment.StoreID(), payment.OrderID())
	if err != nil {
		return err
	}

	status := order.Status()
	switch payment.Status() {
	case models.StatusApproved:
		switch status {
		case ordermodels.StatusPending:
			_, err = s.orders.SetOrderToReceived(ctx, order.ID(), order.StoreID())
		case ordermodels.StatusCanceled:
			err = dErrors.New(dErrors.CodeConflict, "Order was canceled after its payment was approved")
		}
	case models.StatusRefused:
		switch status {
		case ordermodels.StatusPending:
			_, err = s.orders.SetOrderToCanceled(ctx, order.ID(), order.StoreID())
		case ordermodels.StatusCanceled:
		default:
			err = dErrors.Newf(dErrors.CodeConflict, "Order is %s but its payment was refused", status.Label())
		}
	}
	if err != nil {
		return err
	}
	s.logEvent(ctx, eventPaymentReconcile, "payment_id", payment.ID(), "order_id", order.ID())
	return nil
}

// requestReconciliation records that payment was settled but its order was not.
func (s *Service) requestReconciliation(ctx context.Context, payment *models.Payment, cause error) {
	s.metrics.IncrementReconciliationsRequired()
	if s.logger != nil {
		s.logger.ErrorContext(ctx, "order transition failed after payment settled",
			"payment_id", payment.ID(),
			"order_id", payment.OrderID(),
			"payment_status", string(payment.Status()),
			"request_id", requestcontext.RequestID(ctx),
			"error", cause,
		)
	}
	if s.reconciler == nil {
		return
	}
	event := models.NewReconciliationEvent(payment, cause, requestcontext.Now(ctx))
	if err := s.reconciler.PublishReconciliation(ctx, event); err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "reconciliation publish failed", "payment_id", payment.ID(), "error", err)
	}
}
