package gateway

import (
	"context"
	"fmt"

	"cafepos/internal/datasource"
	"cafepos/internal/notification/models"
	dErrors "cafepos/pkg/domain-errors"
)

type Gateway struct {
	ds datasource.NotificationDataSource
}

func New(ds datasource.NotificationDataSource) *Gateway {
	return &Gateway{ds: ds}
}

// Send delivers n over its channel.
func (g *Gateway) Send(ctx context.Context, n models.Notification) error {
	var err error
	switch n.Channel {
	case models.ChannelSMS:
		err = g.ds.SendSMSNotification(ctx, n.Destination, n.Message)
	case models.ChannelWhatsapp:
		err = g.ds.SendWhatsappNotification(ctx, n.Destination, n.Message)
	case models.ChannelEmail:
		err = g.ds.SendEmailNotification(ctx, n.Destination, n.Message)
	case models.ChannelMonitor:
		err = g.ds.SendMonitorNotification(ctx, n.Destination, n.Message)
	default:
		return dErrors.Newf(dErrors.CodeInvalid, "invalid notification channel: %q", string(n.Channel))
	}
	if err != nil {
		return fmt.Errorf("send %s notification: %w", n.Channel, err)
	}
	return nil
}
