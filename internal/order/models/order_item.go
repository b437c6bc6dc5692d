package models

import (
	"math"
	"strings"
	"time"

	"cafepos/internal/platform/idgen"
	dErrors "cafepos/pkg/domain-errors"
)

// OrderItem is one product line of an order. Subtotal is fixed at
// construction as UnitPrice * Quantity rounded to cents.
type OrderItem struct {
	id        string
	productID string
	unitPrice float64
	quantity  int
	subtotal  float64
	createdAt time.Time
}

// OrderItemProps rehydrates a stored item. Subtotal is recomputed, never trusted.
type OrderItemProps struct {
	ID        string
	ProductID string
	UnitPrice float64
	Quantity  int
	CreatedAt time.Time
}

func NewOrderItem(gen idgen.Generator, productID string, unitPrice float64, quantity int, now time.Time) (*OrderItem, error) {
	return buildItem(OrderItemProps{
		ID:        gen.NewID(),
		ProductID: productID,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		CreatedAt: now,
	}, false)
}

func RestoreOrderItem(p OrderItemProps) (*OrderItem, error) {
	return buildItem(p, true)
}

func buildItem(p OrderItemProps, restoring bool) (*OrderItem, error) {
	switch {
	case strings.TrimSpace(p.ProductID) == "":
		return nil, dErrors.New(dErrors.CodeInvalid, "order item product is required")
	case p.UnitPrice <= 0:
		return nil, dErrors.New(dErrors.CodeInvalid, "order item unit price must be greater than zero")
	case p.Quantity <= 0:
		return nil, dErrors.New(dErrors.CodeInvalid, "order item quantity must be greater than zero")
	}
	if restoring {
		if strings.TrimSpace(p.ID) == "" {
			return nil, dErrors.New(dErrors.CodeInvalid, "order item id is required")
		}
		if p.CreatedAt.IsZero() {
			return nil, dErrors.New(dErrors.CodeInvalid, "order item creation time is required")
		}
	}
	return &OrderItem{
		id:        p.ID,
		productID: p.ProductID,
		unitPrice: p.UnitPrice,
		quantity:  p.Quantity,
		subtotal:  roundCents(p.UnitPrice * float64(p.Quantity)),
		createdAt: p.CreatedAt,
	}, nil
}

func (i *OrderItem) ID() string           { return i.id }
func (i *OrderItem) ProductID() string    { return i.productID }
func (i *OrderItem) UnitPrice() float64   { return i.unitPrice }
func (i *OrderItem) Quantity() int        { return i.quantity }
func (i *OrderItem) Subtotal() float64    { return i.subtotal }
func (i *OrderItem) CreatedAt() time.Time { return i.createdAt }

func (i *OrderItem) Props() OrderItemProps {
	return OrderItemProps{
		ID:        i.id,
		ProductID: i.productID,
		UnitPrice: i.unitPrice,
		Quantity:  i.quantity,
		CreatedAt: i.createdAt,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
