package queries

import (
	"context"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveKitchenOrdersQueryHandler retrieves in-flight kitchen orders
// from the database. Filters out completed and failed orders to provide
// active production workload visibility.
type GetActiveKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveKitchenOrdersQueryHandler creates a handler for active
// kitchen order queries. Requires a GORM database connection.
func NewGetActiveKitchenOrdersQueryHandler(db *gorm.DB) GetActiveKitchenOrdersQueryHandler {
	return GetActiveKitchenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the tenant's in-flight kitchen
// orders. Results are sorted by estimated completion time so the most
// urgent work surfaces first.
func (h GetActiveKitchenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveKitchenOrdersQuery,
) ([]GetActiveKitchenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveKitchenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ko.id,
			ko.order_id,
			ko.contract_id,
			ko.priority,
			ko.status,
			ko.station_id,
			ko.estimated_completion_time,
			(SELECT COUNT(*) FROM kitchen_order_items i WHERE i.kitchen_order_id = ko.id)
		FROM kitchen_orders ko
		WHERE ko.tenant_id = ? AND ko.status NOT IN (?, ?)
		ORDER BY ko.estimated_completion_time
	`, query.TenantID().String(),
		kitchenorder.StatusCompleted.String(),
		kitchenorder.StatusFailed.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveKitchenOrdersQueryResponse
		var id, orderID, contractID uuid.UUID
		var stationID uuid.NullUUID

		err = rows.Scan(
			&id,
			&orderID,
			&contractID,
			&response.Priority,
			&response.Status,
			&stationID,
			&response.EstimatedCompletionTime,
			&response.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if response.ContractID, err = kernel.UUIDFromBytes(contractID[:]); err != nil {
			return nil, err
		}
		if stationID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(stationID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.StationID = &assigned
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
