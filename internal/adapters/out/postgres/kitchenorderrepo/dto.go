// Package kitchenorderrepo provides data transfer objects and mapping functions
// for kitchen order persistence. This package implements the repository pattern
// for the kitchen order aggregate, handling the conversion between domain
// entities and database representations.
package kitchenorderrepo

import (
	"time"

	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"

	"github.com/google/uuid"
)

// KitchenOrderDTO represents the database structure for persisting kitchen
// order aggregates.
type KitchenOrderDTO struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ContractID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID                 uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_kitchen_orders_tenant_order,priority:2"`
	TenantID                uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_kitchen_orders_tenant_order,priority:1"`
	Priority                string     `gorm:"type:varchar(16);not null"`
	Status                  string     `gorm:"type:varchar(32);not null;index"`
	StationID               *uuid.UUID `gorm:"type:uuid;index"`
	EstimatedCompletionTime time.Time  `gorm:"not null"`
	ActualCompletionTime    *time.Time
	Items                   []ItemDTO `gorm:"foreignKey:KitchenOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt               time.Time `gorm:"not null"`
	UpdatedAt               time.Time `gorm:"not null"`
}

// TableName specifies the database table name for kitchen order entities.
func (KitchenOrderDTO) TableName() string {
	return "kitchen_orders"
}

// ItemDTO represents one preparation item within the kitchen order. The
// primary key is shared with the production item the entry mirrors.
type ItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	KitchenOrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Quantity         int       `gorm:"type:int;not null"`
	Modifications    []string  `gorm:"serializer:json"`
	EstimatedMinutes int       `gorm:"type:int;not null"`
	Status           string    `gorm:"type:varchar(32);not null"`
	StartedAt        *time.Time
	CompletedAt      *time.Time
}

// TableName specifies the database table name for kitchen order item entities.
func (ItemDTO) TableName() string {
	return "kitchen_order_items"
}

// fromDomain converts a kitchen order aggregate to its database representation.
func fromDomain(aggregate *kitchenorder.KitchenOrder) KitchenOrderDTO {
	kitchenOrderID := aggregate.ID().Bytes()
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(kitchenOrderID, item))
	}

	var stationID *uuid.UUID
	if aggregate.StationID() != nil {
		raw := aggregate.StationID().Bytes()
		stationID = &raw
	}

	return KitchenOrderDTO{
		ID:                      kitchenOrderID,
		ContractID:              aggregate.ContractID().Bytes(),
		OrderID:                 aggregate.OrderID().Bytes(),
		TenantID:                aggregate.TenantID().Bytes(),
		Priority:                aggregate.Priority().String(),
		Status:                  aggregate.Status().String(),
		StationID:               stationID,
		EstimatedCompletionTime: aggregate.EstimatedCompletionTime(),
		ActualCompletionTime:    aggregate.ActualCompletionTime(),
		Items:                   items,
		CreatedAt:               aggregate.CreatedAt(),
		UpdatedAt:               aggregate.UpdatedAt(),
	}
}

// itemFromDomain converts one kitchen order item to its database representation.
func itemFromDomain(kitchenOrderID uuid.UUID, item kitchenorder.Item) ItemDTO {
	return ItemDTO{
		ID:               item.ID().Bytes(),
		KitchenOrderID:   kitchenOrderID,
		ProductID:        item.ProductID().Bytes(),
		Name:             item.Name(),
		Quantity:         item.Quantity(),
		Modifications:    item.Modifications(),
		EstimatedMinutes: item.EstimatedMinutes(),
		Status:           item.Status().String(),
		StartedAt:        item.StartedAt(),
		CompletedAt:      item.CompletedAt(),
	}
}

// toDomain converts a database DTO to a kitchen order aggregate.
func toDomain(dto KitchenOrderDTO) (*kitchenorder.KitchenOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	contractID, err := kernel.UUIDFromBytes(dto.ContractID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	priority, err := contract.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}
	status, err := kitchenorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var stationID *kernel.UUID
	if dto.StationID != nil {
		sID, stationErr := kernel.UUIDFromBytes((*dto.StationID)[:])
		if stationErr != nil {
			return nil, stationErr
		}
		stationID = &sID
	}

	items := make([]kitchenorder.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return kitchenorder.RestoreKitchenOrder(
		id,
		contractID,
		orderID,
		tenantID,
		items,
		priority,
		status,
		stationID,
		dto.EstimatedCompletionTime,
		dto.ActualCompletionTime,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// itemToDomain converts a kitchen order item DTO to its domain entity.
func itemToDomain(dto ItemDTO) (kitchenorder.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return kitchenorder.Item{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return kitchenorder.Item{}, err
	}
	status, err := kitchenorder.ItemStatusFromString(dto.Status)
	if err != nil {
		return kitchenorder.Item{}, err
	}

	return kitchenorder.RestoreItem(id, productID, dto.Name, dto.Quantity,
		dto.Modifications, dto.EstimatedMinutes, status, dto.StartedAt, dto.CompletedAt)
}
