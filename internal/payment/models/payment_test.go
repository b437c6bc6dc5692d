package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cafepos/internal/platform/idgen"
	dErrors "cafepos/pkg/domain-errors"
)

type PaymentSuite struct {
	suite.Suite
	now time.Time
	gen *idgen.Sequence
}

func TestPaymentSuite(t *testing.T) {
	suite.Run(t, new(PaymentSuite))
}

func (s *PaymentSuite) SetupTest() {
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.gen = idgen.NewSequence("pay")
}

func (s *PaymentSuite) pending() *Payment {
	p, err := NewPayment(s.gen, "order-1", "store-1", TypePix, 49.8, s.now)
	s.Require().NoError(err)
	return p
}

func (s *PaymentSuite) TestNewPayment() {
	p := s.pending()
	s.Equal(StatusPending, p.Status())
	s.Equal(49.8, p.Total())
	s.False(p.IsRegistered())

	_, err := NewPayment(s.gen, "order-1", "store-1", Type("BTC"), 1, s.now)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
	_, err = NewPayment(s.gen, "order-1", "store-1", TypePix, 0, s.now)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
	_, err = NewPayment(s.gen, "", "store-1", TypePix, 1, s.now)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
}

func (s *PaymentSuite) TestStateMachine() {
	s.Run("approve from pending", func() {
		p := s.pending()
		s.Require().NoError(p.Approve(s.now))
		s.Equal(StatusApproved, p.Status())
	})

	s.Run("refuse from pending", func() {
		p := s.pending()
		s.Require().NoError(p.Refuse(s.now))
		s.Equal(StatusRefused, p.Status())
	})

	s.Run("terminal states reject every transition", func() {
		for _, settle := range []func(*Payment) error{
			func(p *Payment) error { return p.Approve(s.now) },
			func(p *Payment) error { return p.Refuse(s.now) },
		} {
			p := s.pending()
			s.Require().NoError(settle(p))
			final := p.Status()

			err := p.Approve(s.now)
			s.True(dErrors.HasCode(err, dErrors.CodeConflict))
			s.EqualError(err, "Payment must be pending to be Approved")

			err = p.Refuse(s.now)
			s.True(dErrors.HasCode(err, dErrors.CodeConflict))
			s.EqualError(err, "Payment must be pending to be Rejected")
			s.Equal(final, p.Status())
		}
	})
}

func (s *PaymentSuite) TestExternalRegistration() {
	s.Run("unregistered payment cannot be exposed", func() {
		_, err := s.pending().ToExternalDTO()
		s.True(dErrors.HasCode(err, dErrors.CodeUnexpected))
	})

	s.Run("registered payment renders external view", func() {
		p := s.pending()
		s.Require().NoError(p.RegisterExternal("mp-123", "qr-data", PlatformMercadoPago, s.now))
		dto, err := p.ToExternalDTO()
		s.Require().NoError(err)
		s.Equal("mp-123", dto.ExternalID)
		s.Equal("qr-data", dto.QRCode)
		s.Equal(PlatformMercadoPago, dto.Platform)
		s.Equal(p.ID(), dto.PaymentID)
	})

	s.Run("rejects unknown platform", func() {
		err := s.pending().RegisterExternal("x", "", Platform("PAYPAL"), s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
	})
}

func (s *PaymentSuite) TestRestore() {
	p := s.pending()
	s.Require().NoError(p.RegisterExternal("fake-1", "qr", PlatformFake, s.now))
	s.Require().NoError(p.Approve(s.now.Add(time.Minute)))

	restored, err := RestorePayment(p.Props())
	s.Require().NoError(err)
	s.Equal(p.Props(), restored.Props())

	props := p.Props()
	props.Status = "LOST"
	_, err = RestorePayment(props)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
}
