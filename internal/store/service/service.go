package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"cafepos/internal/platform/idgen"
	"cafepos/internal/platform/metrics"
	"cafepos/internal/platform/tracing"
	"cafepos/internal/store/models"
	"cafepos/pkg/domain"
	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/requestcontext"
)

const (
	eventStoreCreated = "store_created"
	eventTotemAdded   = "totem_added"
	eventTotemRemoved = "totem_removed"
)

type StoreGateway interface {
	FindByID(ctx context.Context, id string) (*models.Store, error)
	FindByEmail(ctx context.Context, email domain.Email) (*models.Store, error)
	FindByCNPJ(ctx context.Context, cnpj domain.CNPJ) (*models.Store, error)
	FindByName(ctx context.Context, name string) (*models.Store, error)
	FindByTotemAccessToken(ctx context.Context, token string) (*models.Store, error)
	Save(ctx context.Context, s *models.Store) error
}

// Service implements store and totem management.
type Service struct {
	stores  StoreGateway
	ids     idgen.Generator
	logger  *slog.Logger
	metrics *metrics.Metrics
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

func New(stores StoreGateway, opts ...Option) *Service {
	s := &Service{stores: stores, ids: idgen.Random{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateStoreInput struct {
	Name        string
	FantasyName string
	Email       string
	CNPJ        string
	Phone       string
	Password    string
}

// CreateStore registers a store. Email, CNPJ and name are unique across stores.
func (s *Service) CreateStore(ctx context.Context, in CreateStoreInput) (_ *models.Store, err error) {
	defer s.metrics.ObserveUseCase("CreateStore", time.Now())
	ctx, span := tracing.Start(ctx, "store.CreateStore")
	defer func() { tracing.End(span, err) }()

	email, err := domain.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	cnpj, err := domain.NewCNPJ(in.CNPJ)
	if err != nil {
		return nil, err
	}
	phone, err := domain.NewBrazilianPhone(in.Phone)
	if err != nil {
		return nil, err
	}

	_, err = s.stores.FindByEmail(ctx, email)
	if err = unique(err, "Store with this email already exists"); err != nil {
		return nil, err
	}
	_, err = s.stores.FindByCNPJ(ctx, cnpj)
	if err = unique(err, "Store with this CNPJ already exists"); err != nil {
		return nil, err
	}
	_, err = s.stores.FindByName(ctx, strings.TrimSpace(in.Name))
	if err = unique(err, "Store with this name already exists"); err != nil {
		return nil, err
	}

	store, err := models.NewStore(s.ids, models.Input{
		Name:        in.Name,
		FantasyName: in.FantasyName,
		Email:       email,
		CNPJ:        cnpj,
		Phone:       phone,
		Password:    in.Password,
	}, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err = s.stores.Save(ctx, store); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("store.id", store.ID()))
	s.logEvent(ctx, eventStoreCreated, "store_id", store.ID())
	s.metrics.IncrementStoresCreated()
	return store, nil
}

func (s *Service) FindStoreByID(ctx context.Context, id string) (*models.Store, error) {
	return s.stores.FindByID(ctx, id)
}

// FindStoreByTotemAccessToken resolves the store a kiosk token belongs to.
func (s *Service) FindStoreByTotemAccessToken(ctx context.Context, token string) (*models.Store, error) {
	if strings.TrimSpace(token) == "" {
		return nil, dErrors.New(dErrors.CodeInvalid, "totem access token is required")
	}
	return s.stores.FindByTotemAccessToken(ctx, token)
}

// AddTotem issues a new totem for the store and returns it, access token included.
func (s *Service) AddTotem(ctx context.Context, storeID, name string) (_ *models.Totem, err error) {
	defer s.metrics.ObserveUseCase("AddTotem", time.Now())
	ctx, span := tracing.Start(ctx, "store.AddTotem", attribute.String("store.id", storeID))
	defer func() { tracing.End(span, err) }()

	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	totem, err := models.NewTotem(s.ids, name, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err = store.AddTotem(totem); err != nil {
		return nil, err
	}
	if err = s.stores.Save(ctx, store); err != nil {
		return nil, err
	}
	s.logEvent(ctx, eventTotemAdded, "store_id", storeID, "totem_id", totem.ID())
	return totem, nil
}

func (s *Service) RemoveTotem(ctx context.Context, storeID, totemID string) (err error) {
	defer s.metrics.ObserveUseCase("RemoveTotem", time.Now())
	ctx, span := tracing.Start(ctx, "store.RemoveTotem", attribute.String("store.id", storeID))
	defer func() { tracing.End(span, err) }()

	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		return err
	}
	if err = store.RemoveTotem(totemID); err != nil {
		return err
	}
	if err = s.stores.Save(ctx, store); err != nil {
		return err
	}
	s.logEvent(ctx, eventTotemRemoved, "store_id", storeID, "totem_id", totemID)
	return nil
}

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
