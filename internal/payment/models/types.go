package models

import dErrors "cafepos/pkg/domain-errors"

// Status is the payment lifecycle state. APPROVED and REFUSED are terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRefused  Status = "REFUSED"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRefused
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRefused
}

// Type is how the customer pays.
type Type string

const (
	TypePix   Type = "PIX"
	TypeQR    Type = "QR"
	TypeMoney Type = "MON"
	TypeCard  Type = "CAR"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePix, TypeQR, TypeMoney, TypeCard:
		return true
	}
	return false
}

// ParseType validates a payment type code.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalid, "invalid payment type: %q", s)
	}
	return t, nil
}

// Platform identifies the external processor that registered the payment.
type Platform string

const (
	PlatformMercadoPago Platform = "MERCADO_PAGO"
	PlatformStripe      Platform = "STRIPE"
	PlatformFake        Platform = "FAKE"
)

func (p Platform) IsValid() bool {
	switch p {
	case PlatformMercadoPago, PlatformStripe, PlatformFake:
		return true
	}
	return false
}

// ParsePlatform validates a platform code. The empty string means "not yet registered".
func ParsePlatform(s string) (Platform, error) {
	if s == "" {
		return "", nil
	}
	p := Platform(s)
	if !p.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalid, "invalid payment platform: %q", s)
	}
	return p, nil
}
