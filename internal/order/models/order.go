package models

import (
	"strings"
	"time"

	"cafepos/internal/platform/idgen"
	dErrors "cafepos/pkg/domain-errors"
)

// Order is the aggregate root for a customer order placed at a store.
//
// Invariants:
//   - StoreID is non-empty; CustomerID and TotemID are optional references
//   - At least one item at all times
//   - TotalPrice always equals the sum of item subtotals
//   - Items can only change while the order is PENDING
//   - Status moves forward only: P -> R -> IP -> F, or P -> C
type Order struct {
	id         string
	customerID string
	storeID    string
	totemID    string
	status     Status
	items      []*OrderItem
	totalPrice float64
	createdAt  time.Time
	updatedAt  time.Time
}

// Props rehydrates a stored order.
type Props struct {
	ID         string
	CustomerID string
	StoreID    string
	TotemID    string
	Status     Status
	Items      []*OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewOrder opens a PENDING order with the given items.
func NewOrder(gen idgen.Generator, storeID, customerID, totemID string, items []*OrderItem, now time.Time) (*Order, error) {
	return build(Props{
		ID:         gen.NewID(),
		CustomerID: customerID,
		StoreID:    storeID,
		TotemID:    totemID,
		Status:     StatusPending,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, false)
}

func RestoreOrder(p Props) (*Order, error) {
	return build(p, true)
}

func build(p Props, restoring bool) (*Order, error) {
	if strings.TrimSpace(p.StoreID) == "" {
		return nil, dErrors.New(dErrors.CodeInvalid, "order must belong to a store")
	}
	if !p.Status.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeInvalid, "invalid order status: %q", string(p.Status))
	}
	if len(p.Items) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalid, "order must have at least one item")
	}
	if restoring && strings.TrimSpace(p.ID) == "" {
		return nil, dErrors.New(dErrors.CodeInvalid, "order id is required")
	}
	o := &Order{
		id:         p.ID,
		customerID: p.CustomerID,
		storeID:    p.StoreID,
		totemID:    p.TotemID,
		status:     p.Status,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
	}
	if err := o.setItems(p.Items); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) ID() string           { return o.id }
func (o *Order) CustomerID() string   { return o.customerID }
func (o *Order) StoreID() string      { return o.storeID }
func (o *Order) TotemID() string      { return o.totemID }
func (o *Order) Status() Status       { return o.status }
func (o *Order) TotalPrice() float64  { return o.totalPrice }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns a copy of the item list.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// BelongsTo reports whether the order is scoped to storeID.
func (o *Order) BelongsTo(storeID string) bool {
	return o.storeID == storeID
}

func (o *Order) setItems(items []*OrderItem) error {
	seen := make(map[string]struct{}, len(items))
	var total float64
	for _, it := range items {
		if it == nil {
			return dErrors.New(dErrors.CodeInvalid, "order item is required")
		}
		if _, dup := seen[it.id]; dup {
			return dErrors.New(dErrors.CodeConflict, "order item already exists in this order")
		}
		seen[it.id] = struct{}{}
		total += it.subtotal
	}
	o.items = append([]*OrderItem(nil), items...)
	o.totalPrice = roundCents(total)
	return nil
}

func (o *Order) canEditItems() error {
	if o.status != StatusPending {
		return dErrors.Newf(dErrors.CodeConflict, "order items can only change while the order is %s", StatusPending.Label())
	}
	return nil
}

// AddItem appends an item and recomputes the total.
func (o *Order) AddItem(item *OrderItem, now time.Time) error {
	if err := o.canEditItems(); err != nil {
		return err
	}
	if err := o.setItems(append(o.Items(), item)); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

// RemoveItem drops the item with the given id and recomputes the total.
// The last item cannot be removed; delete the order instead.
func (o *Order) RemoveItem(itemID string, now time.Time) error {
	if err := o.canEditItems(); err != nil {
		return err
	}
	for i, it := range o.items {
		if it.id != itemID {
			continue
		}
		if len(o.items) == 1 {
			return dErrors.New(dErrors.CodeConflict, "order must keep at least one item")
		}
		rest := append(o.Items()[:i:i], o.items[i+1:]...)
		if err := o.setItems(rest); err != nil {
			return err
		}
		o.touch(now)
		return nil
	}
	return dErrors.New(dErrors.CodeNotFound, "Order item not found")
}

// CanTransitionTo checks whether the order may move to next.
// Use with ApplyTransition for the Can/Apply split used by services.
func (o *Order) CanTransitionTo(next Status) error {
	if !o.status.CanTransitionTo(next) {
		return dErrors.Newf(dErrors.CodeConflict, "Order must be %s to be %s",
			expectedFrom(next).Label(), next.Label())
	}
	return nil
}

// ApplyTransition sets the new status. Call CanTransitionTo first.
func (o *Order) ApplyTransition(next Status, now time.Time) {
	o.status = next
	o.touch(now)
}

// TransitionTo validates and applies a status change in one call.
func (o *Order) TransitionTo(next Status, now time.Time) error {
	if err := o.CanTransitionTo(next); err != nil {
		return err
	}
	o.ApplyTransition(next, now)
	return nil
}

func (o *Order) MarkReceived(now time.Time) error {
	return o.TransitionTo(StatusReceived, now)
}

func (o *Order) StartPreparation(now time.Time) error {
	return o.TransitionTo(StatusInPreparation, now)
}

func (o *Order) Finish(now time.Time) error {
	return o.TransitionTo(StatusFinished, now)
}

func (o *Order) Cancel(now time.Time) error {
	return o.TransitionTo(StatusCanceled, now)
}

func (o *Order) touch(now time.Time) {
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
}

// expectedFrom returns the single status from which next is reachable.
func expectedFrom(next Status) Status {
	for from, tos := range transitions {
		for _, to := range tos {
			if to == next {
				return from
			}
		}
	}
	return next
}

func (o *Order) Props() Props {
	return Props{
		ID:         o.id,
		CustomerID: o.customerID,
		StoreID:    o.storeID,
		TotemID:    o.totemID,
		Status:     o.status,
		Items:      o.Items(),
		CreatedAt:  o.createdAt,
		UpdatedAt:  o.updatedAt,
	}
}
