package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"cafepos/internal/platform/idgen"
	"cafepos/pkg/domain"
	dErrors "cafepos/pkg/domain-errors"
)

// MinNameLength is the shortest accepted customer name after trimming.
const MinNameLength = 3

// Customer is the aggregate root for a registered cafeteria customer.
//
// Invariants:
//   - Name is non-blank and at least MinNameLength characters after trimming
//   - CPF and Email are validated value objects
//   - ID and CreatedAt never change after construction
//
// CPF and email uniqueness across customers is enforced by the create use
// case through gateway lookups; the aggregate cannot see other customers.
type Customer struct {
	id        string
	cpf       domain.CPF
	name      string
	email     domain.Email
	createdAt time.Time
	updatedAt time.Time
}

// Props is the full property bag used to rehydrate a stored customer.
type Props struct {
	ID        string
	CPF       domain.CPF
	Name      string
	Email     domain.Email
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer registers a new customer with a generated id.
func NewCustomer(gen idgen.Generator, cpf domain.CPF, name string, email domain.Email, now time.Time) (*Customer, error) {
	return build(Props{
		ID:        gen.NewID(),
		CPF:       cpf,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, false)
}

// RestoreCustomer rehydrates a customer, validating every field including identity.
func RestoreCustomer(p Props) (*Customer, error) {
	return build(p, true)
}

func build(p Props, restoring bool) (*Customer, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalid, "customer name is required")
	}
	if utf8.RuneCountInString(name) < MinNameLength {
		return nil, dErrors.Newf(dErrors.CodeInvalid, "customer name must have at least %d characters", MinNameLength)
	}
	if p.CPF.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalid, "customer CPF is required")
	}
	if p.Email.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalid, "customer email is required")
	}
	if restoring {
		if strings.TrimSpace(p.ID) == "" {
			return nil, dErrors.New(dErrors.CodeInvalid, "customer id is required")
		}
		if p.CreatedAt.IsZero() {
			return nil, dErrors.New(dErrors.CodeInvalid, "customer creation time is required")
		}
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = p.CreatedAt
	}
	return &Customer{
		id:        p.ID,
		cpf:       p.CPF,
		name:      name,
		email:     p.Email,
		createdAt: p.CreatedAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Customer) ID() string           { return c.id }
func (c *Customer) CPF() domain.CPF      { return c.cpf }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() domain.Email  { return c.email }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// Props returns a copy of the customer's state for mapping and updates.
func (c *Customer) Props() Props {
	return Props{
		ID:        c.id,
		CPF:       c.cpf,
		Name:      c.name,
		Email:     c.email,
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
	}
}
