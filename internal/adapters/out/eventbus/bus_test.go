package eventbus_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kitchenops/internal/adapters/out/eventbus"
	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func confirmedEvent(tenantID kernel.UUID) events.OrderConfirmed {
	return events.OrderConfirmed{
		Header:  events.NewHeader(tenantID),
		OrderID: kernel.NewUUID(),
		Number:  7,
	}
}

func TestInProcessEventBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(discardLogger())
	tenantID := kernel.NewUUID()

	var first, second []events.Event
	bus.Subscribe(events.OrderConfirmed{}.EventType(), func(_ context.Context, event events.Event) {
		first = append(first, event)
	})
	bus.Subscribe(events.OrderConfirmed{}.EventType(), func(_ context.Context, event events.Event) {
		second = append(second, event)
	})

	event := confirmedEvent(tenantID)
	bus.Publish(t.Context(), event)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	require.Equal(t, tenantID, first[0].EventTenantID())
	require.Equal(t, "order.confirmed", first[0].EventType())
}

func TestInProcessEventBus_PublishOnlyMatchingType(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(discardLogger())
	tenantID := kernel.NewUUID()

	var got []events.Event
	bus.Subscribe(events.KitchenOrderCreated{}.EventType(), func(_ context.Context, event events.Event) {
		got = append(got, event)
	})

	bus.Publish(t.Context(), confirmedEvent(tenantID))
	require.Empty(t, got)

	bus.Publish(t.Context(), events.KitchenOrderCreated{
		Header:         events.NewHeader(tenantID),
		KitchenOrderID: kernel.NewUUID(),
	})
	require.Len(t, got, 1)
}

func TestInProcessEventBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(discardLogger())

	require.NotPanics(t, func() {
		bus.Publish(t.Context(), confirmedEvent(kernel.NewUUID()))
	})
}

func TestInProcessEventBus_PanickingSubscriberIsIsolated(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(discardLogger())
	tenantID := kernel.NewUUID()

	var got []events.Event
	bus.Subscribe(events.OrderConfirmed{}.EventType(), func(context.Context, events.Event) {
		panic("subscriber blew up")
	})
	bus.Subscribe(events.OrderConfirmed{}.EventType(), func(_ context.Context, event events.Event) {
		got = append(got, event)
	})

	require.NotPanics(t, func() {
		bus.Publish(t.Context(), confirmedEvent(tenantID))
	})
	require.Len(t, got, 1, "Subscriber after the panicking one must still run")
}
