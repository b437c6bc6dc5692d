package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	catalogmodels "cafepos/internal/catalog/models"
	customermodels "cafepos/internal/customer/models"
	"cafepos/internal/datasource"
	notificationmodels "cafepos/internal/notification/models"
	"cafepos/internal/order/models"
	"cafepos/internal/platform/idgen"
	"cafepos/internal/platform/metrics"
	"cafepos/internal/platform/tracing"
	storemodels "cafepos/internal/store/models"
	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/requestcontext"
)

const (
	eventOrderCreated     = "order_created"
	eventOrderItemAdded   = "order_item_added"
	eventOrderItemRemoved = "order_item_removed"
	eventOrderDeleted     = "order_deleted"
	eventOrderTransition  = "order_status_changed"
)

type OrderGateway interface {
	Save(ctx context.Context, o *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindItemByID(ctx context.Context, itemID string) (*models.OrderItem, string, error)
	DeleteItem(ctx context.Context, itemID string) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context, query datasource.OrderQuery) (datasource.Page[*models.Order], error)
}

type StoreFinder interface {
	FindStoreByID(ctx context.Context, id string) (*storemodels.Store, error)
}

type CustomerFinder interface {
	FindCustomerByID(ctx context.Context, id string) (*customermodels.Customer, error)
}

// ProductFinder returns only the products of storeID among ids.
type ProductFinder interface {
	FindProductsByID(ctx context.Context, storeID string, ids []string) ([]*catalogmodels.Product, error)
}

type Notifier interface {
	Send(ctx context.Context, n notificationmodels.Notification) error
}

// Service implements the order use cases. Operations on an existing order
// are scoped to the caller's store; another store's order reads as not found.
type Service struct {
	orders    OrderGateway
	stores    StoreFinder
	customers CustomerFinder
	products  ProductFinder
	notifier  Notifier
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

// WithNotifier enables monitor and customer notifications on status changes.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func New(orders OrderGateway, stores StoreFinder, customers CustomerFinder, products ProductFinder, opts ...Option) *Service {
	s := &Service{
		orders:    orders,
		stores:    stores,
		customers: customers,
		products:  products,
		ids:       idgen.Random{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type ItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput opens an order at StoreID. CustomerID and TotemID are optional.
type CreateOrderInput struct {
	StoreID    string
	CustomerID string
	TotemID    string
	Items      []ItemInput
}

// CreateOrder opens a PENDING order. Unit prices are copied from the
// current catalog; products must belong to the order's store.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (_ *models.Order, err error) {
	defer s.metrics.ObserveUseCase("CreateOrder", time.Now())
	ctx, span := tracing.Start(ctx, "order.CreateOrder", attribute.String("store.id", in.StoreID))
	defer func() { tracing.End(span, err) }()

	if len(in.Items) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalid, "order must have at least one item")
	}
	store, err := s.stores.FindStoreByID(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	if in.CustomerID != "" {
		if _, err = s.customers.FindCustomerByID(ctx, in.CustomerID); err != nil {
			return nil, err
		}
	}
	if in.TotemID != "" && store.FindTotem(in.TotemID) == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "Totem not found")
	}

	now := requestcontext.Now(ctx)
	items, err := s.buildItems(ctx, in.StoreID, in.Items, now)
	if err != nil {
		return nil, err
	}
	order, err := models.NewOrder(s.ids, in.StoreID, in.CustomerID, in.TotemID, items, now)
	if err != nil {
		return nil, err
	}
	if err = s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("order.id", order.ID()))
	s.logEvent(ctx, eventOrderCreated, "order_id", order.ID(), "store_id", order.StoreID(), "total", order.TotalPrice())
	s.metrics.IncrementOrdersCreated()
	s.notifyMonitor(ctx, order)
	return order, nil
}

// FindOrderByID returns the order if it belongs to storeID.
func (s *Service) FindOrderByID(ctx context.Context, storeID, id string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.BelongsTo(storeID) {
		return nil, dErrors.New(dErrors.CodeNotFound, "Order not found")
	}
	return order, nil
}

// ListOrders pages through a store's orders, optionally narrowed to one status code.
func (s *Service) ListOrders(ctx context.Context, storeID string, pagination datasource.Pagination, status string) (datasource.Page[*models.Order], error) {
	if status != "" {
		if _, err := models.ParseStatus(status); err != nil {
			return datasource.Page[*models.Order]{}, err
		}
	}
	return s.orders.FindAll(ctx, datasource.OrderQuery{
		Pagination: pagination.Normalize(),
		Status:     status,
		StoreID:    storeID,
	})
}

// AddItemToOrder appends a product line to a PENDING order.
func (s *Service) AddItemToOrder(ctx context.Context, storeID, orderID string, in ItemInput) (_ *models.Order, err error) {
	defer s.metrics.ObserveUseCase("AddItemToOrder", time.Now())
	ctx, span := tracing.Start(ctx, "order.AddItemToOrder", attribute.String("order.id", orderID))
	defer func() { tracing.End(span, err) }()

	order, err := s.FindOrderByID(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	items, err := s.buildItems(ctx, storeID, []ItemInput{in}, now)
	if err != nil {
		return nil, err
	}
	if err = order.AddItem(items[0], now); err != nil {
		return nil, err
	}
	if err = s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	s.logEvent(ctx, eventOrderItemAdded, "order_id", orderID, "item_id", items[0].ID())
	return order, nil
}

// RemoveItemFromOrder drops an item from its PENDING order. The last item
// cannot be removed.
func (s *Service) RemoveItemFromOrder(ctx context.Context, storeID, itemID string) (_ *models.Order, err error) {
	defer s.metrics.ObserveUseCase("RemoveItemFromOrder", time.Now())
	ctx, span := tracing.Start(ctx, "order.RemoveItemFromOrder", attribute.String("order_item.id", itemID))
	defer func() { tracing.End(span, err) }()

	_, orderID, err := s.orders.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	order, err := s.FindOrderByID(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}
	if err = order.RemoveItem(itemID, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if err = s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	s.logEvent(ctx, eventOrderItemRemoved, "order_id", orderID, "item_id", itemID)
	return order, nil
}

// DeleteOrder removes the order's items and then the order itself.
func (s *Service) DeleteOrder(ctx context.Context, storeID, orderID string) (err error) {
	defer s.metrics.ObserveUseCase("DeleteOrder", time.Now())
	ctx, span := tracing.Start(ctx, "order.DeleteOrder", attribute.String("order.id", orderID))
	defer func() { tracing.End(span, err) }()

	order, err := s.FindOrderByID(ctx, storeID, orderID)
	if err != nil {
		return err
	}
	for _, item := range order.Items() {
		if err = s.orders.DeleteItem(ctx, item.ID()); err != nil {
			return err
		}
	}
	if err = s.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	s.logEvent(ctx, eventOrderDeleted, "order_id", orderID, "store_id", storeID)
	return nil
}

// buildItems resolves every product once and prices each line from the catalog.
func (s *Service) buildItems(ctx context.Context, storeID string, in []ItemInput, now time.Time) ([]*models.OrderItem, error) {
	ids := make([]string, 0, len(in))
	for _, it := range in {
		if it.ProductID == "" {
			return nil, dErrors.New(dErrors.CodeInvalid, "order item product is required")
		}
		ids = append(ids, it.ProductID)
	}
	products, err := s.products.FindProductsByID(ctx, storeID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*catalogmodels.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	items := make([]*models.OrderItem, 0, len(in))
	for _, it := range in {
		product, ok := byID[it.ProductID]
		if !ok {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "Product %s not found", it.ProductID)
		}
		item, err := models.NewOrderItem(s.ids, product.ID(), product.Price(), it.Quantity, now)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Service) logEvent(ctx context.Context, event string, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, event, append(attributes, "event", event)...)
	}
}
