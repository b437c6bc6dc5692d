package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cafepos/internal/datasource/mocks"
	"cafepos/internal/notification/models"
	dErrors "cafepos/pkg/domain-errors"
)

type NotificationGatewaySuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ds      *mocks.MockNotificationDataSource
	gateway *Gateway
	ctx     context.Context
}

func TestNotificationGatewaySuite(t *testing.T) {
	suite.Run(t, new(NotificationGatewaySuite))
}

func (s *NotificationGatewaySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ds = mocks.NewMockNotificationDataSource(s.ctrl)
	s.gateway = New(s.ds)
	s.ctx = context.Background()
}

func (s *NotificationGatewaySuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NotificationGatewaySuite) notification(channel models.Channel, destination string) models.Notification {
	n, err := models.NewNotification(channel, destination, "Pedido pronto")
	s.Require().NoError(err)
	return n
}

func (s *NotificationGatewaySuite) TestDispatchesByChannel() {
	gomock.InOrder(
		s.ds.EXPECT().SendSMSNotification(s.ctx, "5511987654321", "Pedido pronto").Return(nil),
		s.ds.EXPECT().SendWhatsappNotification(s.ctx, "5511987654321", "Pedido pronto").Return(nil),
		s.ds.EXPECT().SendEmailNotification(s.ctx, "ana@example.com", "Pedido pronto").Return(nil),
		s.ds.EXPECT().SendMonitorNotification(s.ctx, "store-1", "Pedido pronto").Return(nil),
	)

	s.NoError(s.gateway.Send(s.ctx, s.notification(models.ChannelSMS, "5511987654321")))
	s.NoError(s.gateway.Send(s.ctx, s.notification(models.ChannelWhatsapp, "5511987654321")))
	s.NoError(s.gateway.Send(s.ctx, s.notification(models.ChannelEmail, "ana@example.com")))
	s.NoError(s.gateway.Send(s.ctx, s.notification(models.ChannelMonitor, "store-1")))
}

func (s *NotificationGatewaySuite) TestDeliveryFailureIsWrapped() {
	boom := errors.New("smtp refused")
	s.ds.EXPECT().SendEmailNotification(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

	err := s.gateway.Send(s.ctx, s.notification(models.ChannelEmail, "ana@example.com"))
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "send EMAIL notification")
}

func (s *NotificationGatewaySuite) TestUnknownChannel() {
	err := s.gateway.Send(s.ctx, models.Notification{Channel: "PIGEON", Destination: "x", Message: "y"})
	s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
}
