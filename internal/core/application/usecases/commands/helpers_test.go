package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/core/domain/model/order"
	"kitchenops/internal/core/domain/model/station"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orderInStatus(t *testing.T, tenantID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Smash Burger", 2, 1500, nil, nil)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), tenantID, 7, kernel.NewUUID(), order.ChannelWeb,
		[]order.LineItem{item},
		order.PaymentSummary{Method: "card"},
		order.DeliverySummary{Mode: "pickup"},
		status,
		"",
		time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func contractInStatus(t *testing.T, tenantID kernel.UUID, status contract.Status, stationID *kernel.UUID) *contract.ProductionContract {
	t.Helper()
	item, err := contract.NewProductionItem(kernel.NewUUID(), kernel.NewUUID(), nil,
		"Smash Burger", 2, nil, []string{"gluten"}, 10)
	require.NoError(t, err)

	c, err := contract.RestoreProductionContract(
		kernel.NewUUID(), kernel.NewUUID(), tenantID,
		[]contract.ProductionItem{item},
		contract.PriorityMedium,
		status,
		stationID,
		"", []string{"gluten"},
		time.Now().UTC().Add(20*time.Minute),
		1,
		time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return c
}

func kitchenOrderInStatus(t *testing.T, tenantID kernel.UUID, status kitchenorder.Status,
	stationID *kernel.UUID, itemStatus kitchenorder.ItemStatus, itemCount int) *kitchenorder.KitchenOrder {
	t.Helper()

	items := make([]kitchenorder.Item, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		item, err := kitchenorder.RestoreItem(kernel.NewUUID(), kernel.NewUUID(),
			"Smash Burger", 1, nil, 10, itemStatus, nil, nil)
		require.NoError(t, err)
		items = append(items, item)
	}

	ko, err := kitchenorder.RestoreKitchenOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), tenantID,
		items,
		contract.PriorityMedium,
		status,
		stationID,
		time.Now().UTC().Add(20*time.Minute),
		nil,
		time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return ko
}

func activeStation(t *testing.T, tenantID kernel.UUID, typ station.Type, capacity, load int) *station.Station {
	t.Helper()
	s, err := station.RestoreStation(kernel.NewUUID(), tenantID, "Station", typ,
		capacity, load, true, time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)
	return s
}
