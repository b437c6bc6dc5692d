package domain

import (
	"regexp"
	"strings"

	dErrors "cafepos/pkg/domain-errors"
)

const maxEmailLength = 254

// emailPattern is a pragmatic subset of RFC 5322 applied to the lower-cased value.
var emailPattern = regexp.MustCompile(`^[a-z0-9!#$%&'*+/=?^_{|}~-]+(\.[a-z0-9!#$%&'*+/=?^_{|}~-]+)*@([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}$`)

// Email is a trimmed, lower-cased, syntactically valid address.
type Email struct {
	value string
}

// NewEmail normalizes and validates raw.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, dErrors.New(dErrors.CodeInvalid, "email is required")
	}
	if len(v) > maxEmailLength || !emailPattern.MatchString(v) {
		return Email{}, dErrors.New(dErrors.CodeInvalid, "invalid email")
	}
	return Email{value: v}, nil
}

// MustEmail panics on invalid input. Use only in tests and fixtures.
func MustEmail(raw string) Email {
	e, err := NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}
