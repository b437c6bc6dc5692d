package mercadopago

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafepos/internal/datasource"
	dErrors "cafepos/pkg/domain-errors"
)

type stubClient struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (s *stubClient) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	s.got = req
	return s.resp, s.err
}

func TestCreatePaymentExternal(t *testing.T) {
	ctx := context.Background()
	in := datasource.CreatePaymentExternalDTO{PaymentID: "pay-1", OrderID: "order-1", PaymentType: "PIX", Total: 49.8}

	t.Run("registers a pix charge", func(t *testing.T) {
		resp := &payment.Response{ID: 12345}
		resp.PointOfInteraction.TransactionData.QRCode = "00020126pix"
		stub := &stubClient{resp: resp}

		out, err := newWithClient(stub, "buyer@example.com").CreatePaymentExternal(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "12345", out.ExternalID)
		assert.Equal(t, "00020126pix", out.QRCode)
		assert.Equal(t, Platform, out.Platform)

		assert.Equal(t, "pix", stub.got.PaymentMethodID)
		assert.Equal(t, 49.8, stub.got.TransactionAmount)
		assert.Equal(t, "pay-1", stub.got.ExternalReference)
		assert.Equal(t, "Pedido order-1", stub.got.Description)
		assert.Equal(t, "buyer@example.com", stub.got.Payer.Email)
	})

	t.Run("cash is not a Mercado Pago payment", func(t *testing.T) {
		money := in
		money.PaymentType = "MON"
		_, err := newWithClient(&stubClient{}, "").CreatePaymentExternal(ctx, money)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalid))
	})

	t.Run("sdk failures are raw errors", func(t *testing.T) {
		cause := errors.New("503 service unavailable")
		_, err := newWithClient(&stubClient{err: cause}, "").CreatePaymentExternal(ctx, in)
		require.ErrorIs(t, err, cause)
		assert.False(t, dErrors.IsDomain(err))
	})
}
