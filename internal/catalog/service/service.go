package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"cafepos/internal/catalog/models"
	"cafepos/internal/platform/idgen"
	"cafepos/internal/platform/metrics"
	"cafepos/internal/platform/tracing"
	storemodels "cafepos/internal/store/models"
	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/requestcontext"
)

const (
	eventCategoryCreated = "category_created"
	eventProductAdded    = "product_added"
	eventProductRemoved  = "product_removed"
)

type CategoryGateway interface {
	FindCategoryByID(ctx context.Context, id string) (*models.Category, error)
	FindCategoryByNameAndStoreID(ctx context.Context, name, storeID string) (*models.Category, error)
	SaveCategory(ctx context.Context, c *models.Category) error
	FindProductsByID(ctx context.Context, ids []string) ([]*models.Product, error)
}

type StoreFinder interface {
	FindStoreByID(ctx context.Context, id string) (*storemodels.Store, error)
}

// Service implements the catalog use cases. Every operation is scoped to a store.
type Service struct {
	categories CategoryGateway
	stores     StoreFinder
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

func New(categories CategoryGateway, stores StoreFinder, opts ...Option) *Service {
	s := &Service{categories: categories, stores: stores, ids: idgen.Random{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCategory opens an empty category. Names are unique per store.
func (s *Service) CreateCategory(ctx context.Context, storeID, name string) (_ *models.Category, err error) {
	defer s.metrics.ObserveUseCase("CreateCategory", time.Now())
	ctx, span := tracing.Start(ctx, "catalog.CreateCategory", attribute.String("store.id", storeID))
	defer func() { tracing.End(span, err) }()

	if _, err = s.stores.FindStoreByID(ctx, storeID); err != nil {
		return nil, err
	}
	_, err = s.categories.FindCategoryByNameAndStoreID(ctx, strings.TrimSpace(name), storeID)
	switch {
	case err == nil:
		return nil, dErrors.New(dErrors.CodeConflict, "Category with this name already exists")
	case !dErrors.HasCode(err, dErrors.CodeNotFound):
		return nil, err
	}

	category, err := models.NewCategory(s.ids, name, storeID, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err = s.categories.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	s.logEvent(ctx, eventCategoryCreated, "store_id", storeID, "category_id", category.ID())
	return category, nil
}

// FindCategoryByID returns the category if it belongs to storeID.
func (s *Service) FindCategoryByID(ctx context.Context, storeID, id string) (*models.Category, error) {
	category, err := s.categories.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.StoreID() != storeID {
		return nil, dErrors.New(dErrors.CodeNotFound, "Category not found")
	}
	return category, nil
}

// FindProductsByID returns the products among ids that belong to storeID.
// Ids that are missing or owned by another store are skipped.
func (s *Service) FindProductsByID(ctx context.Context, storeID string, ids []string) ([]*models.Product, error) {
	products, err := s.categories.FindProductsByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	owned := products[:0]
	for _, p := range products {
		if p.StoreID() == storeID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

type AddProductInput struct {
	Name        string
	Price       float64
	Description string
	PrepTime    int
	ImageURL    string
}

// AddProductToCategory creates a product in the category's store and adds it.
func (s *Service) AddProductToCategory(ctx context.Context, storeID, categoryID string, in AddProductInput) (_ *models.Product, err error) {
	defer s.metrics.ObserveUseCase("AddProductToCategory", time.Now())
	ctx, span := tracing.Start(ctx, "catalog.AddProductToCategory", attribute.String("category.id", categoryID))
	defer func() { tracing.End(span, err) }()

	category, err := s.FindCategoryByID(ctx, storeID, categoryID)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	product, err := models.NewProduct(s.ids, models.ProductInput{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		PrepTime:    in.PrepTime,
		ImageURL:    in.ImageURL,
		StoreID:     storeID,
	}, now)
	if err != nil {
		return nil, err
	}
	if err = category.AddProduct(product, now); err != nil {
		return nil, err
	}
	if err = s.categories.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	s.logEvent(ctx, eventProductAdded, "category_id", categoryID, "product_id", product.ID())
	return product, nil
}

func (s *Service) RemoveProductFromCategory(ctx context.Context, storeID, categoryID, productID string) (err error) {
	defer s.metrics.ObserveUseCase("RemoveProductFromCategory", time.Now())
	ctx, span := tracing.Start(ctx, "catalog.RemoveProductFromCategory", attribute.String("category.id", categoryID))
	defer func() { tracing.End(span, err) }()

	category, err := s.FindCategoryByID(ctx, storeID, categoryID)
	if err != nil {
		return err
	}
	if err = category.RemoveProduct(productID, requestcontext.Now(ctx)); err != nil {
		return err
	}
	if err = s.categories.SaveCategory(ctx, category); err != nil {
		return err
	}
	s.logEvent(ctx, eventProductRemoved, "category_id", categoryID, "product_id", productID)
	return nil
}

func (s *Service) logEvent(ctx context.Context, event string, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, event, append(attributes, "event", event)...)
	}
}
