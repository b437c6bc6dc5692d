// Package fakepayment is a payment provider for local runs and tests. It
// accepts every payment type and never calls out.
package fakepayment

import (
	"context"
	"fmt"

	"cafepos/internal/datasource"
	"cafepos/internal/platform/idgen"
)

const Platform = "FAKE"

type Provider struct {
	gen idgen.Generator
}

var _ datasource.PaymentProvider = (*Provider)(nil)

func New(gen idgen.Generator) *Provider {
	if gen == nil {
		gen = idgen.Random{}
	}
	return &Provider{gen: gen}
}

func (p *Provider) CreatePaymentExternal(_ context.Context, in datasource.CreatePaymentExternalDTO) (datasource.CreatePaymentExternalResultDTO, error) {
	externalID := "fake-" + p.gen.NewID()
	return datasource.CreatePaymentExternalResultDTO{
		ExternalID: externalID,
		QRCode:     fmt.Sprintf("FAKEQR|%s|%s|%.2f", externalID, in.PaymentType, in.Total),
		Platform:   Platform,
	}, nil
}
