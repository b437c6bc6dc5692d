package domain

import (
	"strings"

	dErrors "cafepos/pkg/domain-errors"
)

const cnpjLength = 14

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// CNPJ is a validated Brazilian company taxpayer id.
//
// Invariants:
//   - exactly 14 digits, surrounding whitespace trimmed; punctuation is rejected
//   - not all digits identical
//   - both mod-11 check digits match
type CNPJ struct {
	value string
}

// NewCNPJ validates raw and returns the normalized CNPJ.
func NewCNPJ(raw string) (CNPJ, error) {
	digits := strings.TrimSpace(raw)
	if len(digits) != cnpjLength || !allDigits(digits) {
		return CNPJ{}, dErrors.New(dErrors.CodeInvalid, "CNPJ must have 14 digits")
	}
	if allSame(digits) {
		return CNPJ{}, dErrors.New(dErrors.CodeInvalid, "CNPJ cannot have all digits equal")
	}
	if mod11Digit(digits, cnpjFirstWeights) != digits[12] ||
		mod11Digit(digits, cnpjSecondWeights) != digits[13] {
		return CNPJ{}, dErrors.New(dErrors.CodeInvalid, "invalid CNPJ")
	}
	return CNPJ{value: digits}, nil
}

// MustCNPJ panics on invalid input. Use only in tests and fixtures.
func MustCNPJ(raw string) CNPJ {
	c, err := NewCNPJ(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the raw digits.
func (c CNPJ) String() string {
	return c.value
}

// Format renders the CNPJ as 00.000.000/0000-00.
func (c CNPJ) Format() string {
	if c.IsZero() {
		return ""
	}
	v := c.value
	return v[0:2] + "." + v[2:5] + "." + v[5:8] + "/" + v[8:12] + "-" + v[12:14]
}

func (c CNPJ) Equals(other CNPJ) bool {
	return c.value == other.value
}

func (c CNPJ) IsZero() bool {
	return c.value == ""
}
