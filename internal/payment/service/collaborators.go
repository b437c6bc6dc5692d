package service

import (
	"context"

	ordermodels "cafepos/internal/order/models"
	"cafepos/internal/payment/models"
)

// OrderTransitioner is the slice of the order use cases a payment drives.
// FindOrderByID is store-scoped: another store's order reads as not found.
type OrderTransitioner interface {
	FindOrderByID(ctx context.Context, storeID, id string) (*ordermodels.Order, error)
	SetOrderToReceived(ctx context.Context, orderID, storeID string) (*ordermodels.Order, error)
	SetOrderToCanceled(ctx context.Context, orderID, storeID string) (*ordermodels.Order, error)
}

// ReconciliationPublisher announces payments whose order step must be re-driven.
type ReconciliationPublisher interface {
	PublishReconciliation(ctx context.Context, event models.ReconciliationEvent) error
}
