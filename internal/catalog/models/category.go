package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"cafepos/internal/platform/idgen"
	dErrors "cafepos/pkg/domain-errors"
)

// Category groups a store's products.
//
// Invariants:
//   - Name has at least MinNameLength characters after trimming
//   - StoreID is non-empty and every product belongs to the same store
//   - Product ids and product names are each unique within the category
//   - UpdatedAt never moves backwards
type Category struct {
	id        string
	name      string
	storeID   string
	createdAt time.Time
	updatedAt time.Time
	products  []*Product
}

// CategoryProps rehydrates a stored category.
type CategoryProps struct {
	ID        string
	Name      string
	StoreID   string
	CreatedAt time.Time
	UpdatedAt time.Time
	Products  []*Product
}

func NewCategory(gen idgen.Generator, name, storeID string, now time.Time) (*Category, error) {
	return buildCategory(CategoryProps{
		ID:        gen.NewID(),
		Name:      name,
		StoreID:   storeID,
		CreatedAt: now,
		UpdatedAt: now,
	}, false)
}

func RestoreCategory(p CategoryProps) (*Category, error) {
	return buildCategory(p, true)
}

func buildCategory(p CategoryProps, restoring bool) (*Category, error) {
	name := strings.TrimSpace(p.Name)
	if utf8.RuneCountInString(name) < MinNameLength {
		return nil, dErrors.Newf(dErrors.CodeInvalid, "category name must have at least %d characters", MinNameLength)
	}
	if strings.TrimSpace(p.StoreID) == "" {
		return nil, dErrors.New(dErrors.CodeInvalid, "category must belong to a store")
	}
	if restoring && strings.TrimSpace(p.ID) == "" {
		return nil, dErrors.New(dErrors.CodeInvalid, "category id is required")
	}
	c := &Category{
		id:        p.ID,
		name:      name,
		storeID:   p.StoreID,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}
	for _, prod := range p.Products {
		if err := c.canAdd(prod); err != nil {
			return nil, err
		}
		c.products = append(c.products, prod)
	}
	return c, nil
}

func (c *Category) ID() string           { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) StoreID() string      { return c.storeID }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// Products returns a copy of the product list.
func (c *Category) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Category) canAdd(p *Product) error {
	if p == nil {
		return dErrors.New(dErrors.CodeInvalid, "product is required")
	}
	if p.storeID != c.storeID {
		return dErrors.New(dErrors.CodeInvalid, "product belongs to another store")
	}
	for _, existing := range c.products {
		if existing.id == p.id {
			return dErrors.New(dErrors.CodeConflict, "Product already exists in this category")
		}
		if existing.name == p.name {
			return dErrors.New(dErrors.CodeConflict, "Product with this name already exists in this category")
		}
	}
	return nil
}

// AddProduct appends p, rejecting a duplicate id or name.
func (c *Category) AddProduct(p *Product, now time.Time) error {
	if err := c.canAdd(p); err != nil {
		return err
	}
	c.products = append(c.products, p)
	c.touch(now)
	return nil
}

// RemoveProduct drops the product with the given id.
func (c *Category) RemoveProduct(id string, now time.Time) error {
	for i, p := range c.products {
		if p.id == id {
			c.products = append(c.products[:i:i], c.products[i+1:]...)
			c.touch(now)
			return nil
		}
	}
	return dErrors.New(dErrors.CodeNotFound, "Product not found in this category")
}

func (c *Category) touch(now time.Time) {
	if now.After(c.updatedAt) {
		c.updatedAt = now
	}
}

func (c *Category) Props() CategoryProps {
	return CategoryProps{
		ID:        c.id,
		Name:      c.name,
		StoreID:   c.storeID,
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
		Products:  c.Products(),
	}
}
