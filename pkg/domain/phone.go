package domain

import (
	"strings"

	dErrors "cafepos/pkg/domain-errors"
)

const brazilCountryCode = "55"

// BrazilianPhone is a normalized phone number stored as digits with the
// country code: 55 + two-digit area code + 8 (landline) or 9 (mobile) digits.
//
// Invariants:
//   - area code in 11..99 with no zero digit
//   - 9-digit numbers are mobile and start with 9
type BrazilianPhone struct {
	value string
}

// NewBrazilianPhone accepts "+55 (11) 98765-4321", "11987654321" and similar.
// Numbers without the country code are assumed Brazilian.
func NewBrazilianPhone(raw string) (BrazilianPhone, error) {
	digits := strings.Map(func(r rune) rune {
		switch r {
		case '+', '(', ')', '-', '.', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if !allDigits(digits) {
		return BrazilianPhone{}, dErrors.New(dErrors.CodeInvalid, "phone must contain only digits")
	}

	national := digits
	switch len(digits) {
	case 12, 13:
		if !strings.HasPrefix(digits, brazilCountryCode) {
			return BrazilianPhone{}, dErrors.New(dErrors.CodeInvalid, "phone country code must be 55")
		}
		national = digits[2:]
	case 10, 11:
	default:
		return BrazilianPhone{}, dErrors.New(dErrors.CodeInvalid, "phone must have 10 or 11 digits plus optional country code")
	}

	if national[0] == '0' || national[1] == '0' {
		return BrazilianPhone{}, dErrors.New(dErrors.CodeInvalid, "invalid phone area code")
	}
	if len(national) == 11 && national[2] != '9' {
		return BrazilianPhone{}, dErrors.New(dErrors.CodeInvalid, "mobile numbers must start with 9")
	}
	return BrazilianPhone{value: brazilCountryCode + national}, nil
}

// MustBrazilianPhone panics on invalid input. Use only in tests and fixtures.
func MustBrazilianPhone(raw string) BrazilianPhone {
	p, err := NewBrazilianPhone(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the digits including the country code.
func (p BrazilianPhone) String() string {
	return p.value
}

// AreaCode returns the two-digit DDD.
func (p BrazilianPhone) AreaCode() string {
	if p.IsZero() {
		return ""
	}
	return p.value[2:4]
}

// Format renders +55 (11) 98765-4321 or +55 (11) 3456-7890.
func (p BrazilianPhone) Format() string {
	if p.IsZero() {
		return ""
	}
	number := p.value[4:]
	split := len(number) - 4
	return "+55 (" + p.AreaCode() + ") " + number[:split] + "-" + number[split:]
}

func (p BrazilianPhone) Equals(other BrazilianPhone) bool {
	return p.value == other.value
}

func (p BrazilianPhone) IsZero() bool {
	return p.value == ""
}
