package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"cafepos/internal/customer/models"
	"cafepos/internal/datasource"
	"cafepos/internal/platform/idgen"
	"cafepos/internal/platform/metrics"
	"cafepos/internal/platform/tracing"
	"cafepos/pkg/domain"
	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/requestcontext"
)

const eventCustomerCreated = "customer_created"

type CustomerGateway interface {
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	FindByCPF(ctx context.Context, cpf domain.CPF) (*models.Customer, error)
	FindByEmail(ctx context.Context, email domain.Email) (*models.Customer, error)
	Save(ctx context.Context, c *models.Customer) error
	FindAll(ctx context.Context, pagination datasource.Pagination, filters datasource.CustomerFilters) (datasource.Page[*models.Customer], error)
}

// Service implements the customer use cases.
type Service struct {
	customers CustomerGateway
	ids       idgen.Generator
	logger    *slog.Logger
	metrics   *metrics.Metrics
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

func New(customers CustomerGateway, opts ...Option) *Service {
	s := &Service{customers: customers, ids: idgen.Random{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateCustomerInput struct {
	Name  string
	CPF   string
	Email string
}

// CreateCustomer registers a customer. CPF and email must not belong to
// another customer.
func (s *Service) CreateCustomer(ctx context.Context, in CreateCustomerInput) (_ *models.Customer, err error) {
	defer s.metrics.ObserveUseCase("CreateCustomer", time.Now())
	ctx, span := tracing.Start(ctx, "customer.CreateCustomer")
	defer func() { tracing.End(span, err) }()

	cpf, err := domain.NewCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	_, err = s.customers.FindByCPF(ctx, cpf)
	if err = unique(err, "Customer with this CPF already exists"); err != nil {
		return nil, err
	}
	_, err = s.customers.FindByEmail(ctx, email)
	if err = unique(err, "Customer with this email already exists"); err != nil {
		return nil, err
	}

	customer, err := models.NewCustomer(s.ids, cpf, in.Name, email, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err = s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("customer.id", customer.ID()))
	s.logEvent(ctx, eventCustomerCreated, "customer_id", customer.ID())
	s.metrics.IncrementCustomersCreated()
	return customer, nil
}

func (s *Service) FindCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

func (s *Service) FindCustomerByCPF(ctx context.Context, raw string) (*models.Customer, error) {
	cpf, err := domain.NewCPF(raw)
	if err != nil {
		return nil, err
	}
	return s.customers.FindByCPF(ctx, cpf)
}

func (s *Service) FindCustomerByEmail(ctx context.Context, raw string) (*models.Customer, error) {
	email, err := domain.NewEmail(raw)
	if err != nil {
		return nil, err
	}
	return s.customers.FindByEmail(ctx, email)
}

// ListCustomers pages through customers. Out-of-range pagination is clamped;
// CPF and email filters are normalized before matching.
func (s *Service) ListCustomers(ctx context.Context, pagination datasource.Pagination, filters datasource.CustomerFilters) (datasource.Page[*models.Customer], error) {
	if filters.CPF != "" {
		cpf, err := domain.NewCPF(filters.CPF)
		if err != nil {
			return datasource.Page[*models.Customer]{}, err
		}
		filters.CPF = cpf.String()
	}
	if filters.Email != "" {
		email, err := domain.NewEmail(filters.Email)
		if err != nil {
			return datasource.Page[*models.Customer]{}, err
		}
		filters.Email = email.String()
	}
	return s.customers.FindAll(ctx, pagination.Normalize(), filters)
}

// unique turns a successful lookup into a conflict and a miss into nil.
func unique(lookupErr error, message string) error {
	switch {
	case lookupErr == nil:
		return dErrors.New(dErrors.CodeConflict, message)
	case dErrors.HasCode(lookupErr, dErrors.CodeNotFound):
		return nil
	}
	return lookupErr
}

func (s *Service) logEvent(ctx context.Context, event string, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, event, append(attributes, "event", event)...)
	}
}
