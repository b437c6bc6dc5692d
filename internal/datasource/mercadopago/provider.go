// Package mercadopago registers payments with Mercado Pago through the
// official SDK.
package mercadopago

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"cafepos/internal/datasource"
	dErrors "cafepos/pkg/domain-errors"
)

// Platform is reported back for every payment this provider registers.
const Platform = "MERCADO_PAGO"

// paymentCreator is the slice of payment.Client this provider uses.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// Provider implements datasource.PaymentProvider for PIX and QR payments.
type Provider struct {
	client     paymentCreator
	payerEmail string
}

var _ datasource.PaymentProvider = (*Provider)(nil)

// New builds a provider bound to one seller access token.
func New(accessToken, payerEmail string) (*Provider, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create MP config: %w", err)
	}
	return newWithClient(payment.NewClient(cfg), payerEmail), nil
}

func newWithClient(client paymentCreator, payerEmail string) *Provider {
	return &Provider{client: client, payerEmail: payerEmail}
}

// CreatePaymentExternal creates a PIX charge. Both PIX and QR payments are
// settled through a PIX QR code; cash and card are handled at the counter.
func (p *Provider) CreatePaymentExternal(ctx context.Context, in datasource.CreatePaymentExternalDTO) (datasource.CreatePaymentExternalResultDTO, error) {
	switch in.PaymentType {
	case "PIX", "QR":
	default:
		return datasource.CreatePaymentExternalResultDTO{},
			dErrors.Newf(dErrors.CodeInvalid, "payment type %s is not supported by Mercado Pago", in.PaymentType)
	}

	description := in.Description
	if description == "" {
		description = "Pedido " + in.OrderID
	}
	result, err := p.client.Create(ctx, payment.Request{
		TransactionAmount: in.Total,
		Description:       description,
		PaymentMethodID:   "pix",
		ExternalReference: in.PaymentID,
		Payer: &payment.PayerRequest{
			Email: p.payerEmail,
		},
	})
	if err != nil {
		return datasource.CreatePaymentExternalResultDTO{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return datasource.CreatePaymentExternalResultDTO{
		ExternalID: strconv.Itoa(result.ID),
		QRCode:     result.PointOfInteraction.TransactionData.QRCode,
		Platform:   Platform,
	}, nil
}
