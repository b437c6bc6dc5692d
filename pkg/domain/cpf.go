package domain

import (
	"strings"

	dErrors "cafepos/pkg/domain-errors"
)

const cpfLength = 11

var (
	cpfFirstWeights  = descending(10, 2)
	cpfSecondWeights = descending(11, 2)
)

// CPF is a validated Brazilian individual taxpayer id.
//
// Invariants:
//   - exactly 11 digits, surrounding whitespace trimmed; punctuation is rejected
//   - not all digits identical
//   - both mod-11 check digits match (weights 10..2, then 11..2)
type CPF struct {
	value string
}

// NewCPF validates raw and returns the normalized CPF.
func NewCPF(raw string) (CPF, error) {
	digits := strings.TrimSpace(raw)
	if len(digits) != cpfLength || !allDigits(digits) {
		return CPF{}, dErrors.New(dErrors.CodeInvalid, "CPF must have 11 digits")
	}
	if allSame(digits) {
		return CPF{}, dErrors.New(dErrors.CodeInvalid, "CPF cannot have all digits equal")
	}
	if mod11Digit(digits, cpfFirstWeights) != digits[9] ||
		mod11Digit(digits, cpfSecondWeights) != digits[10] {
		return CPF{}, dErrors.New(dErrors.CodeInvalid, "invalid CPF")
	}
	return CPF{value: digits}, nil
}

// MustCPF panics on invalid input. Use only in tests and fixtures.
func MustCPF(raw string) CPF {
	c, err := NewCPF(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the raw digits.
func (c CPF) String() string {
	return c.value
}

// Format renders the CPF as 000.000.000-00.
func (c CPF) Format() string {
	if c.IsZero() {
		return ""
	}
	v := c.value
	return v[0:3] + "." + v[3:6] + "." + v[6:9] + "-" + v[9:11]
}

func (c CPF) Equals(other CPF) bool {
	return c.value == other.value
}

func (c CPF) IsZero() bool {
	return c.value == ""
}
