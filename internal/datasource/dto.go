package datasource

import (
	"math"
	"time"
)

// Persisted records use snake_case field names; the external payment DTOs
// below them use camelCase. Entities never see either shape.

type CustomerDTO struct {
	ID        string    `json:"id"`
	CPF       string    `json:"cpf"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TotemDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TokenAccess string    `json:"token_access"`
	StoreID     string    `json:"store_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type StoreDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	FantasyName  string     `json:"fantasy_name"`
	Email        string     `json:"email"`
	CNPJ         string     `json:"cnpj"`
	Phone        string     `json:"phone"`
	Salt         string     `json:"salt"`
	PasswordHash string     `json:"password_hash"`
	CreatedAt    time.Time  `json:"created_at"`
	Totems       []TotemDTO `json:"totems"`
}

type ProductDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	PrepTime    int       `json:"prep_time"`
	ImageURL    string    `json:"image_url,omitempty"`
	StoreID     string    `json:"store_id"`
	CategoryID  string    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryDTO struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	StoreID   string       `json:"store_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Products  []ProductDTO `json:"products"`
}

type OrderItemDTO struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderDTO struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id,omitempty"`
	StoreID    string         `json:"store_id"`
	TotemID    string         `json:"totem_id,omitempty"`
	Status     string         `json:"status"`
	TotalPrice float64        `json:"total_price"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	OrderItems []OrderItemDTO `json:"order_items"`
}

type PaymentDTO struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	StoreID     string    `json:"store_id"`
	PaymentType string    `json:"payment_type"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	ExternalID  string    `json:"external_id,omitempty"`
	QRCode      string    `json:"qr_code,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePaymentExternalDTO is sent to the payment provider.
type CreatePaymentExternalDTO struct {
	PaymentID   string  `json:"paymentId"`
	OrderID     string  `json:"orderId"`
	StoreID     string  `json:"storeId"`
	PaymentType string  `json:"paymentType"`
	Total       float64 `json:"total"`
	Description string  `json:"description"`
}

// CreatePaymentExternalResultDTO is the provider's answer.
type CreatePaymentExternalResultDTO struct {
	ExternalID string `json:"externalId"`
	QRCode     string `json:"qrCode"`
	Platform   string `json:"platform"`
}

// Pagination is 1-based; Limit <= 0 means DefaultLimit.
type Pagination struct {
	Page  int
	Limit int
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Normalize clamps page and limit into range. Page is capped so that
// Offset()+Limit never overflows an int.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if maxPage := math.MaxInt / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

// Offset is the number of records skipped before this page.
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// CustomerFilters narrow FindAllCustomers. Name matches case-insensitively
// as a substring; Email and CPF match exactly.
type CustomerFilters struct {
	Name  string
	Email string
	CPF   string
}

// OrderQuery narrows GetAllOrders. StoreID is required; Status is optional.
type OrderQuery struct {
	Pagination
	Status  string
	StoreID string
}

type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
}
