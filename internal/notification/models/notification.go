package models

import (
	"strings"

	dErrors "cafepos/pkg/domain-errors"
)

// Channel is the delivery medium of a notification.
type Channel string

const (
	ChannelSMS      Channel = "SMS"
	ChannelWhatsapp Channel = "WHATSAPP"
	ChannelEmail    Channel = "EMAIL"
	// ChannelMonitor targets the store's kitchen monitor; Destination is the store id.
	ChannelMonitor Channel = "MONITOR"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelSMS, ChannelWhatsapp, ChannelEmail, ChannelMonitor:
		return true
	}
	return false
}

// Notification is a single message to deliver. It is not persisted.
type Notification struct {
	Channel     Channel
	Destination string
	Message     string
}

// NewNotification validates channel, destination and message.
func NewNotification(channel Channel, destination, message string) (Notification, error) {
	if !channel.IsValid() {
		return Notification{}, dErrors.Newf(dErrors.CodeInvalid, "invalid notification channel: %q", string(channel))
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return Notification{}, dErrors.New(dErrors.CodeInvalid, "notification destination is required")
	}
	if strings.TrimSpace(message) == "" {
		return Notification{}, dErrors.New(dErrors.CodeInvalid, "notification message is required")
	}
	return Notification{Channel: channel, Destination: destination, Message: message}, nil
}
