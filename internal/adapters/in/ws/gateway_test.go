package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kitchenops/internal/adapters/out/eventbus"
	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/domain/model/kernel"
)

func decodeEnvelope(t *testing.T, client *Client) envelope {
	t.Helper()

	require.Len(t, client.send, 1)

	var message envelope
	require.NoError(t, json.Unmarshal(<-client.send, &message))

	return message
}

func TestGateway_RoutesOrderConfirmedToItsRooms(t *testing.T) {
	hub := NewHub(discardLogger(), NewMetrics())
	bus := eventbus.NewInProcessEventBus(discardLogger())
	NewGateway(hub, bus, discardLogger())

	tenantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	tenantViewer := testClient(hub)
	hub.join(tenantViewer, RoomTenant(tenantID))
	kitchenDisplay := testClient(hub)
	hub.join(kitchenDisplay, RoomKitchen(tenantID))
	orderTracker := testClient(hub)
	hub.join(orderTracker, RoomOrder(orderID))
	customerTracker := testClient(hub)
	hub.join(customerTracker, RoomCustomer(customerID))
	otherTenant := testClient(hub)
	hub.join(otherTenant, RoomTenant(kernel.NewUUID()))

	confirmedAt := time.Now().UTC()
	bus.Publish(t.Context(), events.OrderConfirmed{
		Header:      events.NewHeader(tenantID),
		OrderID:     orderID,
		CustomerID:  customerID,
		Number:      42,
		ConfirmedAt: confirmedAt,
	})

	require.Empty(t, otherTenant.send)

	for _, client := range []*Client{tenantViewer, kitchenDisplay, orderTracker, customerTracker} {
		message := decodeEnvelope(t, client)
		require.Equal(t, "order.confirmed", message.Type)
		require.Equal(t, tenantID.String(), message.TenantID)

		payload, err := json.Marshal(message.Payload)
		require.NoError(t, err)

		var decoded orderConfirmedPayload
		require.NoError(t, json.Unmarshal(payload, &decoded))
		require.Equal(t, orderID.String(), decoded.OrderID)
		require.Equal(t, customerID.String(), decoded.CustomerID)
		require.Equal(t, int64(42), decoded.Number)
	}
}

func TestGateway_RoutesIngredientConsumedToTenantRoomsOnly(t *testing.T) {
	hub := NewHub(discardLogger(), NewMetrics())
	bus := eventbus.NewInProcessEventBus(discardLogger())
	NewGateway(hub, bus, discardLogger())

	tenantID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	kitchenDisplay := testClient(hub)
	hub.join(kitchenDisplay, RoomKitchen(tenantID))
	orderTracker := testClient(hub)
	hub.join(orderTracker, RoomOrder(orderID))

	bus.Publish(t.Context(), events.IngredientConsumed{
		Header:     events.NewHeader(tenantID),
		OrderID:    orderID,
		ProductID:  kernel.NewUUID(),
		Quantity:   2,
		ConsumedAt: time.Now().UTC(),
	})

	require.Len(t, kitchenDisplay.send, 1)
	require.Empty(t, orderTracker.send)
}

func TestGateway_StatusChangedCarriesStation(t *testing.T) {
	hub := NewHub(discardLogger(), NewMetrics())
	bus := eventbus.NewInProcessEventBus(discardLogger())
	NewGateway(hub, bus, discardLogger())

	tenantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	stationID := kernel.NewUUID()

	orderTracker := testClient(hub)
	hub.join(orderTracker, RoomOrder(orderID))

	bus.Publish(t.Context(), events.KitchenOrderStatusChanged{
		Header:          events.NewHeader(tenantID),
		KitchenOrderID:  kernel.NewUUID(),
		OrderID:         orderID,
		PreviousStatus:  "pending",
		NewStatus:       "assigned",
		AssignedStation: &stationID,
	})

	message := decodeEnvelope(t, orderTracker)
	require.Equal(t, "kitchen_order.status_changed", message.Type)

	payload, err := json.Marshal(message.Payload)
	require.NoError(t, err)

	var decoded kitchenOrderStatusChangedPayload
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Equal(t, "assigned", decoded.NewStatus)
	require.NotNil(t, decoded.AssignedStation)
	require.Equal(t, stationID.String(), *decoded.AssignedStation)
	require.Nil(t, decoded.EstimatedCompletionTime)
}

func TestGateway_EachEventTypeIsRouted(t *testing.T) {
	hub := NewHub(discardLogger(), NewMetrics())
	bus := eventbus.NewInProcessEventBus(discardLogger())
	NewGateway(hub, bus, discardLogger())

	tenantID := kernel.NewUUID()
	tenantViewer := testClient(hub)
	hub.join(tenantViewer, RoomTenant(tenantID))

	published := []events.Event{
		events.OrderConfirmed{Header: events.NewHeader(tenantID), OrderID: kernel.NewUUID(), CustomerID: kernel.NewUUID(), Number: 1, ConfirmedAt: time.Now().UTC()},
		events.ProductionContractCreated{Header: events.NewHeader(tenantID), ContractID: kernel.NewUUID(), OrderID: kernel.NewUUID(), Priority: "high", EstimatedCompletionTime: time.Now().UTC(), ItemCount: 3},
		events.KitchenOrderCreated{Header: events.NewHeader(tenantID), KitchenOrderID: kernel.NewUUID(), OrderID: kernel.NewUUID(), ContractID: kernel.NewUUID(), Priority: "medium", EstimatedCompletionTime: time.Now().UTC()},
		events.KitchenOrderStatusChanged{Header: events.NewHeader(tenantID), KitchenOrderID: kernel.NewUUID(), OrderID: kernel.NewUUID(), PreviousStatus: "assigned", NewStatus: "preparing"},
		events.IngredientConsumed{Header: events.NewHeader(tenantID), OrderID: kernel.NewUUID(), ProductID: kernel.NewUUID(), Quantity: 1, ConsumedAt: time.Now().UTC()},
	}

	for _, event := range published {
		bus.Publish(t.Context(), event)
	}

	require.Len(t, tenantViewer.send, len(published))
	for _, event := range published {
		var message envelope
		require.NoError(t, json.Unmarshal(<-tenantViewer.send, &message))
		require.Equal(t, event.EventType(), message.Type)
		require.Equal(t, tenantID.String(), message.TenantID)
	}
}
