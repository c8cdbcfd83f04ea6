package services_test

import (
	"testing"

	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/core/domain/model/order"
	"kitchenops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapper_ToOrderStatus(t *testing.T) {
	mapper := services.NewStatusMapper()

	mapped := map[kitchenorder.Status]order.Status{
		kitchenorder.StatusPreparing: order.Preparing,
		kitchenorder.StatusReady:     order.Ready,
	}
	unmapped := []kitchenorder.Status{
		kitchenorder.StatusPending,
		kitchenorder.StatusAssigned,
		kitchenorder.StatusCompleted,
		kitchenorder.StatusFailed,
	}

	for from, want := range mapped {
		got, ok := mapper.ToOrderStatus(from)
		assert.True(t, ok, from.String())
		assert.Equal(t, want, got)
	}

	for _, from := range unmapped {
		_, ok := mapper.ToOrderStatus(from)
		assert.False(t, ok, from.String())
	}
}

func TestStatusMapper_ToKitchenStatus(t *testing.T) {
	mapper := services.NewStatusMapper()

	mapped := map[order.Status]kitchenorder.Status{
		order.Confirmed: kitchenorder.StatusPending,
		order.Preparing: kitchenorder.StatusPreparing,
		order.Ready:     kitchenorder.StatusReady,
	}
	unmapped := []order.Status{
		order.Draft, order.Pending, order.Delivering, order.Delivered, order.Cancelled,
	}

	for from, want := range mapped {
		got, ok := mapper.ToKitchenStatus(from)
		assert.True(t, ok, from.String())
		assert.Equal(t, want, got)
	}

	for _, from := range unmapped {
		_, ok := mapper.ToKitchenStatus(from)
		assert.False(t, ok, from.String())
	}
}
