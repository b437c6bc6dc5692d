package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cafepos/internal/datasource"
	"cafepos/internal/datasource/memory"
	"cafepos/internal/order/models"
	"cafepos/internal/platform/idgen"
	dErrors "cafepos/pkg/domain-errors"
)

type OrderGatewaySuite struct {
	suite.Suite
	gateway *Gateway
	ctx     context.Context
	gen     *idgen.Sequence
	now     time.Time
}

func TestOrderGatewaySuite(t *testing.T) {
	suite.Run(t, new(OrderGatewaySuite))
}

func (s *OrderGatewaySuite) SetupTest() {
	s.gateway = New(memory.New())
	s.ctx = context.Background()
	s.gen = idgen.NewSequence("ord")
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *OrderGatewaySuite) order(storeID string) *models.Order {
	first, err := models.NewOrderItem(s.gen, "prod-1", 12.45, 4, s.now)
	s.Require().NoError(err)
	second, err := models.NewOrderItem(s.gen, "prod-2", 3.5, 1, s.now)
	s.Require().NoError(err)
	o, err := models.NewOrder(s.gen, storeID, "cust-1", "", []*models.OrderItem{first, second}, s.now)
	s.Require().NoError(err)
	return o
}

func (s *OrderGatewaySuite) TestRoundTrip() {
	o := s.order("store-1")
	dto := ToDTO(o)
	s.Equal("P", dto.Status)
	s.Equal(53.3, dto.TotalPrice)
	s.Equal(o.ID(), dto.OrderItems[1].OrderID)

	back, err := FromDTO(dto)
	s.Require().NoError(err)
	s.Equal(o.Props(), back.Props())
	s.Equal(o.TotalPrice(), back.TotalPrice())
}

func (s *OrderGatewaySuite) TestMalformedDTO() {
	s.Run("unknown status", func() {
		dto := ToDTO(s.order("store-1"))
		dto.Status = "X"
		_, err := FromDTO(dto)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
	})
	s.Run("stored subtotal is not trusted", func() {
		dto := ToDTO(s.order("store-1"))
		dto.OrderItems[0].Subtotal = 1
		o, err := FromDTO(dto)
		s.Require().NoError(err)
		s.Equal(49.8, o.Items()[0].Subtotal())
	})
}

func (s *OrderGatewaySuite) TestItemsAndDeletion() {
	o := s.order("store-1")
	s.Require().NoError(s.gateway.Save(s.ctx, o))

	itemID := o.Items()[0].ID()
	item, orderID, err := s.gateway.FindItemByID(s.ctx, itemID)
	s.Require().NoError(err)
	s.Equal(o.ID(), orderID)
	s.Equal("prod-1", item.ProductID())

	err = s.gateway.Delete(s.ctx, o.ID())
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	for _, it := range o.Items() {
		s.Require().NoError(s.gateway.DeleteItem(s.ctx, it.ID()))
	}
	s.Require().NoError(s.gateway.Delete(s.ctx, o.ID()))

	_, err = s.gateway.FindByID(s.ctx, o.ID())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Contains(err.Error(), "Order not found")

	_, _, err = s.gateway.FindItemByID(s.ctx, itemID)
	s.Contains(err.Error(), "Order item not found")
}

func (s *OrderGatewaySuite) TestFindAllScopesByStoreAndStatus() {
	pending := s.order("store-1")
	received := s.order("store-1")
	s.Require().NoError(received.MarkReceived(s.now))
	other := s.order("store-2")
	for _, o := range []*models.Order{pending, received, other} {
		s.Require().NoError(s.gateway.Save(s.ctx, o))
	}

	page, err := s.gateway.FindAll(s.ctx, datasource.OrderQuery{StoreID: "store-1"})
	s.Require().NoError(err)
	s.Equal(2, page.Total)

	page, err = s.gateway.FindAll(s.ctx, datasource.OrderQuery{StoreID: "store-1", Status: "R"})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal(received.ID(), page.Items[0].ID())
}
