package gateway

import (
	"context"
	"fmt"

	"cafepos/internal/datasource"
	"cafepos/internal/payment/models"
)

const resource = "Payment"

// PaymentDataSource is what the payment gateway needs: persistence plus the
// external processor.
type PaymentDataSource interface {
	datasource.PaymentDataSource
	datasource.PaymentProvider
}

type Gateway struct {
	ds PaymentDataSource
}

func New(ds PaymentDataSource) *Gateway {
	return &Gateway{ds: ds}
}

func (g *Gateway) Save(ctx context.Context, p *models.Payment) error {
	return datasource.Translate(g.ds.SavePayment(ctx, ToDTO(p)), resource)
}

func (g *Gateway) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	return g.load(g.ds.FindPaymentByID(ctx, id))
}

// FindByOrderID returns the most recent payment for the order.
func (g *Gateway) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	return g.load(g.ds.FindPaymentByOrderID(ctx, orderID))
}

// CreateExternal registers the payment with the configured processor. The
// payment itself is not modified; callers apply the result.
func (g *Gateway) CreateExternal(ctx context.Context, p *models.Payment, description string) (models.ExternalRegistration, error) {
	res, err := g.ds.CreatePaymentExternal(ctx, datasource.CreatePaymentExternalDTO{
		PaymentID:   p.ID(),
		OrderID:     p.OrderID(),
		StoreID:     p.StoreID(),
		PaymentType: string(p.PaymentType()),
		Total:       p.Total(),
		Description: description,
	})
	if err != nil {
		return models.ExternalRegistration{}, fmt.Errorf("register payment %s externally: %w", p.ID(), err)
	}
	platform, err := models.ParsePlatform(res.Platform)
	if err != nil {
		return models.ExternalRegistration{}, err
	}
	return models.ExternalRegistration{ExternalID: res.ExternalID, QRCode: res.QRCode, Platform: platform}, nil
}

func (g *Gateway) load(dto datasource.PaymentDTO, err error) (*models.Payment, error) {
	if err != nil {
		return nil, datasource.Translate(err, resource)
	}
	return FromDTO(dto)
}
