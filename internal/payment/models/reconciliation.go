package models

import "time"

// ReconciliationEvent records a settled payment whose order transition
// failed afterwards. Consumers re-drive the order step by PaymentID.
type ReconciliationEvent struct {
	PaymentID  string    `json:"paymentId"`
	OrderID    string    `json:"orderId"`
	StoreID    string    `json:"storeId"`
	Status     Status    `json:"status"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewReconciliationEvent describes p after its order step failed with cause.
func NewReconciliationEvent(p *Payment, cause error, now time.Time) ReconciliationEvent {
	ev := ReconciliationEvent{
		PaymentID:  p.id,
		OrderID:    p.orderID,
		StoreID:    p.storeID,
		Status:     p.status,
		OccurredAt: now,
	}
	if cause != nil {
		ev.Reason = cause.Error()
	}
	return ev
}
