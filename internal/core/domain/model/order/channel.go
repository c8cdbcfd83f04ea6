package order

import (
	"fmt"

	"kitchenops/internal/pkg/errs"
)

// Channel identifies the platform an order originated from. The channel
// feeds production priority: aggregator platforms promise pickup windows
// and jump the queue, direct-messaging orders are clocked from the
// conversation.
type Channel string

const (
	// ChannelCounter is an in-store order taken at the counter.
	ChannelCounter Channel = "counter"

	// ChannelWeb is the tenant's own ordering site.
	ChannelWeb Channel = "web"

	// ChannelWhatsApp is a direct-messaging order.
	ChannelWhatsApp Channel = "whatsapp"

	// ChannelIFood, ChannelRappi and ChannelUberEats are delivery-platform
	// (aggregator) channels.
	ChannelIFood    Channel = "ifood"
	ChannelRappi    Channel = "rappi"
	ChannelUberEats Channel = "uber_eats"
)

// getValidChannels returns the set of recognized channels.
func getValidChannels() map[Channel]struct{} {
	return map[Channel]struct{}{
		ChannelCounter:  {},
		ChannelWeb:      {},
		ChannelWhatsApp: {},
		ChannelIFood:    {},
		ChannelRappi:    {},
		ChannelUberEats: {},
	}
}

// Validate checks if the Channel value is one of the recognized platforms.
func (c Channel) Validate() error {
	if _, ok := getValidChannels()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%q is not a valid channel", string(c)))
	}
	return nil
}

// String returns the channel identifier.
func (c Channel) String() string {
	return string(c)
}

// IsAggregator reports whether the channel is a delivery platform.
func (c Channel) IsAggregator() bool {
	switch c {
	case ChannelIFood, ChannelRappi, ChannelUberEats:
		return true
	default:
		return false
	}
}

// IsDirectMessaging reports whether the order arrived over a messaging
// conversation.
func (c Channel) IsDirectMessaging() bool {
	return c == ChannelWhatsApp
}
