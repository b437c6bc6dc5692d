package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	ordermodels "cafepos/internal/order/models"
	"cafepos/internal/payment/models"
	"cafepos/internal/platform/idgen"
	"cafepos/internal/platform/metrics"
	"cafepos/internal/platform/tracing"
	storemodels "cafepos/internal/store/models"
	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/requestcontext"
)

const (
	eventPaymentInitiated = "payment_initiated"
	eventPaymentApproved  = "payment_approved"
	eventPaymentRefused   = "payment_refused"
	eventPaymentReconcile = "payment_reconciled"
)

type PaymentGateway interface {
	Save(ctx context.Context, p *models.Payment) error
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	CreateExternal(ctx context.Context, p *models.Payment, description string) (models.ExternalRegistration, error)
}

type StoreFinder interface {
	FindStoreByID(ctx context.Context, id string) (*storemodels.Store, error)
}

// Service implements the payment use cases.
type Service struct {
	payments   PaymentGateway
	stores     StoreFinder
	orders     OrderTransitioner
	reconciler ReconciliationPublisher
	ids        idgen.Generator
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithIDGenerator(gen idgen.Generator) Option {
	return func(s *Service) {
		s.ids = gen
	}
}

// WithReconciliationPublisher sets where failed order steps are announced.
// Without one they are only logged and counted.
func WithReconciliationPublisher(p ReconciliationPublisher) Option {
	return func(s *Service) {
		s.reconciler = p
	}
}

func New(payments PaymentGateway, stores StoreFinder, orders OrderTransitioner, opts ...Option) *Service {
	s := &Service{payments: payments, stores: stores, orders: orders, ids: idgen.Random{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type InitiatePaymentInput struct {
	StoreID     string
	OrderID     string
	PaymentType string
}

// InitiatePayment opens a payment for a PENDING order, registers it with the
// processor and returns the external view (QR code included). The total is
// the order's total at this moment.
func (s *Service) InitiatePayment(ctx context.Context, in InitiatePaymentInput) (_ models.ExternalDTO, err error) {
	defer s.metrics.ObserveUseCase("InitiatePayment", time.Now())
	ctx, span := tracing.Start(ctx, "payment.InitiatePayment",
		attribute.String("store.id", in.StoreID),
		attribute.String("order.id", in.OrderID),
	)
	defer func() { tracing.End(span, err) }()

	paymentType, err := models.ParseType(in.PaymentType)
	if err != nil {
		return models.ExternalDTO{}, err
	}
	store, err := s.stores.FindStoreByID(ctx, in.StoreID)
	if err != nil {
		return models.ExternalDTO{}, err
	}
	order, err := s.orders.FindOrderByID(ctx, store.ID(), in.OrderID)
	if err != nil {
		return models.ExternalDTO{}, err
	}
	if order.Status() != ordermodels.StatusPending {
		return models.ExternalDTO{}, dErrors.Newf(dErrors.CodeConflict,
			"Order must be %s to be paid", ordermodels.StatusPending.Label())
	}
	if err = s.ensureNoOpenPayment(ctx, order.ID()); err != nil {
		return models.ExternalDTO{}, err
	}

	now := requestcontext.Now(ctx)
	payment, err := models.NewPayment(s.ids, order.ID(), store.ID(), paymentType, order.TotalPrice(), now)
	if err != nil {
		return models.ExternalDTO{}, err
	}
	reg, err := s.payments.CreateExternal(ctx, payment,
		fmt.Sprintf("%s - Pedido %s", store.FantasyName(), order.ID()))
	if err != nil {
		return models.ExternalDTO{}, err
	}
	if err = payment.RegisterExternal(reg.ExternalID, reg.QRCode, reg.Platform, now); err != nil {
		return models.ExternalDTO{}, err
	}
	if err = s.payments.Save(ctx, payment); err != nil {
		s.orphanedExternalPayment(ctx, payment, err)
		return models.ExternalDTO{}, err
	}

	span.SetAttributes(attribute.String("payment.id", payment.ID()))
	s.logEvent(ctx, eventPaymentInitiated,
		"payment_id", payment.ID(),
		"order_id", order.ID(),
		"platform", string(reg.Platform),
		"total", payment.Total(),
	)
	s.metrics.IncrementPaymentsInitiated(string(reg.Platform))
	return payment.ToExternalDTO()
}

// orphanedExternalPayment records a processor charge that has no local
// payment row, so it can be voided or matched by hand.
func (s *Service) orphanedExternalPayment(ctx context.Context, payment *models.Payment, cause error) {
	s.metrics.IncrementReconciliationsRequired()
	if s.logger != nil {
		s.logger.ErrorContext(ctx, "payment registered externally but not saved",
			"payment_id", payment.ID(),
			"order_id", payment.OrderID(),
			"external_id", payment.ExternalID(),
			"platform", string(payment.Platform()),
			"request_id", requestcontext.RequestID(ctx),
			"error", cause,
		)
	}
}

func (s *Service) FindPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	return s.payments.FindByID(ctx, id)
}

// FindPaymentFromOrder returns the latest payment of an order owned by storeID.
func (s *Service) FindPaymentFromOrder(ctx context.Context, storeID, orderID string) (*models.Payment, error) {
	order, err := s.orders.FindOrderByID(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}
	return s.payments.FindByOrderID(ctx, order.ID())
}

// ensureNoOpenPayment rejects a second payment while one is pending or
// approved. A refused payment may be retried.
func (s *Service) ensureNoOpenPayment(ctx context.Context, orderID string) error {
	existing, err := s.payments.FindByOrderID(ctx, orderID)
	switch {
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		return nil
	case err != nil:
		return err
	case existing.Status() == models.StatusRefused:
		return nil
	}
	return dErrors.New(dErrors.CodeConflict, "Order already has a pending or approved payment")
}

func (s *Service) logEvent(ctx context.Context, event string, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, event, append(attributes, "event", event)...)
	}
}
