package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cafepos/internal/platform/idgen"
	dErrors "cafepos/pkg/domain-errors"
)

type OrderSuite struct {
	suite.Suite
	now time.Time
	gen *idgen.Sequence
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(OrderSuite))
}

func (s *OrderSuite) SetupTest() {
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.gen = idgen.NewSequence("ord")
}

func (s *OrderSuite) item(price float64, qty int) *OrderItem {
	it, err := NewOrderItem(s.gen, "prod-1", price, qty, s.now)
	s.Require().NoError(err)
	return it
}

func (s *OrderSuite) order(items ...*OrderItem) *Order {
	if len(items) == 0 {
		items = []*OrderItem{s.item(10, 1)}
	}
	o, err := NewOrder(s.gen, "store-1", "cust-1", "", items, s.now)
	s.Require().NoError(err)
	return o
}

func (s *OrderSuite) TestOrderItem() {
	s.Run("subtotal is unit price times quantity", func() {
		s.Equal(49.8, s.item(12.45, 4).Subtotal())
		s.Equal(0.3, s.item(0.1, 3).Subtotal())
	})

	s.Run("rejects invalid input", func() {
		_, err := NewOrderItem(s.gen, "", 1, 1, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
		_, err = NewOrderItem(s.gen, "p", 0, 1, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
		_, err = NewOrderItem(s.gen, "p", 1, 0, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
	})

	s.Run("restore requires id and createdAt", func() {
		_, err := RestoreOrderItem(OrderItemProps{ProductID: "p", UnitPrice: 1, Quantity: 1, CreatedAt: s.now})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
		_, err = RestoreOrderItem(OrderItemProps{ID: "i", ProductID: "p", UnitPrice: 1, Quantity: 1})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
	})
}

func (s *OrderSuite) TestTotalTracksItems() {
	a, b := s.item(12.45, 4), s.item(3.5, 2)
	o := s.order(a, b)
	s.Equal(StatusPending, o.Status())
	s.Equal(56.8, o.TotalPrice())

	c := s.item(1.1, 1)
	s.Require().NoError(o.AddItem(c, s.now))
	s.Equal(57.9, o.TotalPrice())

	s.Require().NoError(o.RemoveItem(a.ID(), s.now))
	s.Equal(8.1, o.TotalPrice())
	s.Len(o.Items(), 2)

	s.True(dErrors.HasCode(o.RemoveItem("missing", s.now), dErrors.CodeNotFound))
}

func (s *OrderSuite) TestItemRules() {
	s.Run("order needs at least one item", func() {
		_, err := NewOrder(s.gen, "store-1", "", "", nil, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
	})

	s.Run("last item cannot be removed", func() {
		it := s.item(10, 1)
		o := s.order(it)
		s.True(dErrors.HasCode(o.RemoveItem(it.ID(), s.now), dErrors.CodeConflict))
		s.Len(o.Items(), 1)
	})

	s.Run("items are frozen after leaving PENDING", func() {
		o := s.order()
		s.Require().NoError(o.MarkReceived(s.now))
		s.True(dErrors.HasCode(o.AddItem(s.item(1, 1), s.now), dErrors.CodeConflict))
	})
}

func (s *OrderSuite) TestTransitions() {
	s.Run("happy path", func() {
		o := s.order()
		later := s.now.Add(time.Minute)
		s.Require().NoError(o.MarkReceived(later))
		s.Require().NoError(o.StartPreparation(later))
		s.Require().NoError(o.Finish(later))
		s.Equal(StatusFinished, o.Status())
		s.Equal(later, o.UpdatedAt())
		s.True(o.Status().IsTerminal())
	})

	s.Run("cancel only from PENDING", func() {
		o := s.order()
		s.Require().NoError(o.Cancel(s.now))
		s.Equal(StatusCanceled, o.Status())

		o = s.order()
		s.Require().NoError(o.MarkReceived(s.now))
		err := o.Cancel(s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.EqualError(err, "Order must be PENDING to be CANCELED")
	})

	s.Run("never regresses or skips", func() {
		o := s.order()
		s.True(dErrors.HasCode(o.Finish(s.now), dErrors.CodeConflict))
		s.Require().NoError(o.MarkReceived(s.now))
		s.True(dErrors.HasCode(o.MarkReceived(s.now), dErrors.CodeConflict))
		s.Equal(StatusReceived, o.Status())
	})
}

func (s *OrderSuite) TestStatusParsing() {
	for _, code := range []string{"P", "R", "IP", "F", "C"} {
		st, err := ParseStatus(code)
		s.Require().NoError(err)
		s.Equal(code, string(st))
	}
	_, err := ParseStatus("X")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
}

func (s *OrderSuite) TestRestoreRoundTrip() {
	o := s.order(s.item(2, 2), s.item(3, 1))
	s.Require().NoError(o.MarkReceived(s.now.Add(time.Second)))

	restored, err := RestoreOrder(o.Props())
	s.Require().NoError(err)
	s.Equal(o.Props(), restored.Props())
	s.Equal(o.TotalPrice(), restored.TotalPrice())

	p := o.Props()
	p.Status = "Z"
	_, err = RestoreOrder(p)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
}
