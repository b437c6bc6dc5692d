package models

import (
	"strings"
	"time"

	"cafepos/internal/platform/idgen"
	dErrors "cafepos/pkg/domain-errors"
)

// Payment is the aggregate root for the payment of a single order.
//
// Invariants:
//   - OrderID and StoreID are non-empty; Total > 0
//   - Total is copied from the order at initiation and never re-derived
//   - Only PENDING may transition, to APPROVED or REFUSED
//   - ExternalID and Platform are set together by RegisterExternal
type Payment struct {
	id          string
	orderID     string
	storeID     string
	paymentType Type
	status      Status
	total       float64
	externalID  string
	qrCode      string
	platform    Platform
	createdAt   time.Time
	updatedAt   time.Time
}

// Props rehydrates a stored payment.
type Props struct {
	ID          string
	OrderID     string
	StoreID     string
	PaymentType Type
	Status      Status
	Total       float64
	ExternalID  string
	QRCode      string
	Platform    Platform
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExternalDTO is the external-facing view of a registered payment.
type ExternalDTO struct {
	PaymentID  string   `json:"paymentId"`
	OrderID    string   `json:"orderId"`
	ExternalID string   `json:"externalId"`
	QRCode     string   `json:"qrCode"`
	Platform   Platform `json:"platform"`
	Total      float64  `json:"total"`
	Status     Status   `json:"status"`
}

// ExternalRegistration is a processor's answer to a registration request.
type ExternalRegistration struct {
	ExternalID string
	QRCode     string
	Platform   Platform
}

// NewPayment opens a PENDING payment for an order.
func NewPayment(gen idgen.Generator, orderID, storeID string, paymentType Type, total float64, now time.Time) (*Payment, error) {
	return build(Props{
		ID:          gen.NewID(),
		OrderID:     orderID,
		StoreID:     storeID,
		PaymentType: paymentType,
		Status:      StatusPending,
		Total:       total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, false)
}

func RestorePayment(p Props) (*Payment, error) {
	return build(p, true)
}

func build(p Props, restoring bool) (*Payment, error) {
	switch {
	case strings.TrimSpace(p.OrderID) == "":
		return nil, dErrors.New(dErrors.CodeInvalid, "payment order is required")
	case strings.TrimSpace(p.StoreID) == "":
		return nil, dErrors.New(dErrors.CodeInvalid, "payment store is required")
	case !p.PaymentType.IsValid():
		return nil, dErrors.Newf(dErrors.CodeInvalid, "invalid payment type: %q", string(p.PaymentType))
	case !p.Status.IsValid():
		return nil, dErrors.Newf(dErrors.CodeInvalid, "invalid payment status: %q", string(p.Status))
	case p.Total <= 0:
		return nil, dErrors.New(dErrors.CodeInvalid, "payment total must be greater than zero")
	case p.Platform != "" && !p.Platform.IsValid():
		return nil, dErrors.Newf(dErrors.CodeInvalid, "invalid payment platform: %q", string(p.Platform))
	}
	if restoring && strings.TrimSpace(p.ID) == "" {
		return nil, dErrors.New(dErrors.CodeInvalid, "payment id is required")
	}
	return &Payment{
		id:          p.ID,
		orderID:     p.OrderID,
		storeID:     p.StoreID,
		paymentType: p.PaymentType,
		status:      p.Status,
		total:       p.Total,
		externalID:  p.ExternalID,
		qrCode:      p.QRCode,
		platform:    p.Platform,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}, nil
}

func (p *Payment) ID() string           { return p.id }
func (p *Payment) OrderID() string      { return p.orderID }
func (p *Payment) StoreID() string      { return p.storeID }
func (p *Payment) PaymentType() Type    { return p.paymentType }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) Total() float64       { return p.total }
func (p *Payment) ExternalID() string   { return p.externalID }
func (p *Payment) QRCode() string       { return p.qrCode }
func (p *Payment) Platform() Platform   { return p.platform }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }

// IsRegistered reports whether an external processor has accepted the payment.
func (p *Payment) IsRegistered() bool {
	return p.externalID != "" && p.platform != ""
}

// RegisterExternal records the processor's reference for this payment.
func (p *Payment) RegisterExternal(externalID, qrCode string, platform Platform, now time.Time) error {
	if strings.TrimSpace(externalID) == "" {
		return dErrors.New(dErrors.CodeInvalid, "external payment id is required")
	}
	if !platform.IsValid() {
		return dErrors.Newf(dErrors.CodeInvalid, "invalid payment platform: %q", string(platform))
	}
	if p.status != StatusPending {
		return dErrors.New(dErrors.CodeConflict, "Payment must be pending to be registered")
	}
	p.externalID = externalID
	p.qrCode = qrCode
	p.platform = platform
	p.touch(now)
	return nil
}

// CanApprove checks the payment is still PENDING.
func (p *Payment) CanApprove() error {
	if p.status != StatusPending {
		return dErrors.New(dErrors.CodeConflict, "Payment must be pending to be Approved")
	}
	return nil
}

// ApplyApproval moves the payment to APPROVED. Call CanApprove first.
func (p *Payment) ApplyApproval(now time.Time) {
	p.status = StatusApproved
	p.touch(now)
}

func (p *Payment) Approve(now time.Time) error {
	if err := p.CanApprove(); err != nil {
		return err
	}
	p.ApplyApproval(now)
	return nil
}

// CanRefuse checks the payment is still PENDING.
func (p *Payment) CanRefuse() error {
	if p.status != StatusPending {
		return dErrors.New(dErrors.CodeConflict, "Payment must be pending to be Rejected")
	}
	return nil
}

// ApplyRefusal moves the payment to REFUSED. Call CanRefuse first.
func (p *Payment) ApplyRefusal(now time.Time) {
	p.status = StatusRefused
	p.touch(now)
}

func (p *Payment) Refuse(now time.Time) error {
	if err := p.CanRefuse(); err != nil {
		return err
	}
	p.ApplyRefusal(now)
	return nil
}

// ToExternalDTO renders the external-facing view. A payment that was never
// registered with a processor cannot be exposed.
func (p *Payment) ToExternalDTO() (ExternalDTO, error) {
	if !p.IsRegistered() {
		return ExternalDTO{}, dErrors.New(dErrors.CodeUnexpected, "payment has no external registration")
	}
	return ExternalDTO{
		PaymentID:  p.id,
		OrderID:    p.orderID,
		ExternalID: p.externalID,
		QRCode:     p.qrCode,
		Platform:   p.platform,
		Total:      p.total,
		Status:     p.status,
	}, nil
}

func (p *Payment) touch(now time.Time) {
	if now.After(p.updatedAt) {
		p.updatedAt = now
	}
}

func (p *Payment) Props() Props {
	return Props{
		ID:          p.id,
		OrderID:     p.orderID,
		StoreID:     p.storeID,
		PaymentType: p.paymentType,
		Status:      p.status,
		Total:       p.total,
		ExternalID:  p.externalID,
		QRCode:      p.qrCode,
		Platform:    p.platform,
		CreatedAt:   p.createdAt,
		UpdatedAt:   p.updatedAt,
	}
}
