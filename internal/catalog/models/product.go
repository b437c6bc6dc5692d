package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"cafepos/internal/platform/idgen"
	dErrors "cafepos/pkg/domain-errors"
)

// MinNameLength applies to both category and product names.
const MinNameLength = 3

// Product is a sellable item in a store's catalog.
//
// Invariants:
//   - Name has at least MinNameLength characters after trimming
//   - Price > 0, PrepTime >= 0 (minutes)
//   - StoreID is non-empty
type Product struct {
	id          string
	name        string
	price       float64
	description string
	prepTime    int
	imageURL    string
	storeID     string
	createdAt   time.Time
	updatedAt   time.Time
}

// ProductInput is the creation payload for a product.
type ProductInput struct {
	Name        string
	Price       float64
	Description string
	PrepTime    int
	ImageURL    string
	StoreID     string
}

// ProductProps rehydrates a stored product.
type ProductProps struct {
	ID          string
	Name        string
	Price       float64
	Description string
	PrepTime    int
	ImageURL    string
	StoreID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(gen idgen.Generator, in ProductInput, now time.Time) (*Product, error) {
	return buildProduct(ProductProps{
		ID:          gen.NewID(),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		PrepTime:    in.PrepTime,
		ImageURL:    in.ImageURL,
		StoreID:     in.StoreID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, false)
}

func RestoreProduct(p ProductProps) (*Product, error) {
	return buildProduct(p, true)
}

func buildProduct(p ProductProps, restoring bool) (*Product, error) {
	name := strings.TrimSpace(p.Name)
	switch {
	case utf8.RuneCountInString(name) < MinNameLength:
		return nil, dErrors.Newf(dErrors.CodeInvalid, "product name must have at least %d characters", MinNameLength)
	case p.Price <= 0:
		return nil, dErrors.New(dErrors.CodeInvalid, "product price must be greater than zero")
	case p.PrepTime < 0:
		return nil, dErrors.New(dErrors.CodeInvalid, "product prep time cannot be negative")
	case strings.TrimSpace(p.StoreID) == "":
		return nil, dErrors.New(dErrors.CodeInvalid, "product must belong to a store")
	}
	if restoring && strings.TrimSpace(p.ID) == "" {
		return nil, dErrors.New(dErrors.CodeInvalid, "product id is required")
	}
	return &Product{
		id:          p.ID,
		name:        name,
		price:       p.Price,
		description: strings.TrimSpace(p.Description),
		prepTime:    p.PrepTime,
		imageURL:    strings.TrimSpace(p.ImageURL),
		storeID:     p.StoreID,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}, nil
}

func (p *Product) ID() string           { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Price() float64       { return p.price }
func (p *Product) Description() string  { return p.description }
func (p *Product) PrepTime() int        { return p.prepTime }
func (p *Product) ImageURL() string     { return p.imageURL }
func (p *Product) StoreID() string      { return p.storeID }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func (p *Product) Props() ProductProps {
	return ProductProps{
		ID:          p.id,
		Name:        p.name,
		Price:       p.price,
		Description: p.description,
		PrepTime:    p.prepTime,
		ImageURL:    p.imageURL,
		StoreID:     p.storeID,
		CreatedAt:   p.createdAt,
		UpdatedAt:   p.updatedAt,
	}
}
