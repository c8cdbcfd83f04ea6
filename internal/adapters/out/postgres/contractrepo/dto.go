// Package contractrepo provides data transfer objects and mapping functions for
// production contract persistence. This package implements the repository pattern
// for the production contract aggregate, handling the conversion between domain
// entities and database representations.
package contractrepo

import (
	"time"

	"kitchenops/internal/core/domain/model/contract"
	"kitchenops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContractDTO represents the database structure for persisting production
// contract aggregates. The version column backs optimistic concurrency
// control on updates.
type ContractDTO struct {
	ID                      uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID                 uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_contracts_tenant_order,priority:2"`
	TenantID                uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_contracts_tenant_order,priority:1"`
	Priority                string              `gorm:"type:varchar(16);not null"`
	Status                  string              `gorm:"type:varchar(32);not null;index"`
	StationID               *uuid.UUID          `gorm:"type:uuid;index"`
	SpecialInstructions     string              `gorm:"type:varchar(1024)"`
	AllergenAlerts          []string            `gorm:"serializer:json"`
	EstimatedCompletionTime time.Time           `gorm:"not null"`
	Version                 int64               `gorm:"type:bigint;not null"`
	Items                   []ProductionItemDTO `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
	CreatedAt               time.Time           `gorm:"not null"`
	UpdatedAt               time.Time           `gorm:"not null"`
}

// TableName specifies the database table name for contract entities.
func (ContractDTO) TableName() string {
	return "production_contracts"
}

// ProductionItemDTO represents one production item within the contract.
type ProductionItemDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ContractID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID  `gorm:"type:uuid;not null"`
	RecipeID         *uuid.UUID `gorm:"type:uuid"`
	Name             string     `gorm:"type:varchar(255);not null"`
	Quantity         int        `gorm:"type:int;not null"`
	Modifications    []string   `gorm:"serializer:json"`
	Allergens        []string   `gorm:"serializer:json"`
	EstimatedMinutes int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for production item entities.
func (ProductionItemDTO) TableName() string {
	return "production_items"
}

// fromDomain converts a production contract aggregate to its database representation.
func fromDomain(aggregate *contract.ProductionContract) ContractDTO {
	contractID := aggregate.ID().Bytes()
	items := make([]ProductionItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var recipeID *uuid.UUID
		if item.RecipeID() != nil {
			raw := item.RecipeID().Bytes()
			recipeID = &raw
		}

		items = append(items, ProductionItemDTO{
			ID:               item.ID().Bytes(),
			ContractID:       contractID,
			ProductID:        item.ProductID().Bytes(),
			RecipeID:         recipeID,
			Name:             item.Name(),
			Quantity:         item.Quantity(),
			Modifications:    item.Modifications(),
			Allergens:        item.Allergens(),
			EstimatedMinutes: item.EstimatedMinutes(),
		})
	}

	var stationID *uuid.UUID
	if aggregate.StationID() != nil {
		raw := aggregate.StationID().Bytes()
		stationID = &raw
	}

	return ContractDTO{
		ID:                      contractID,
		OrderID:                 aggregate.OrderID().Bytes(),
		TenantID:                aggregate.TenantID().Bytes(),
		Priority:                aggregate.Priority().String(),
		Status:                  aggregate.Status().String(),
		StationID:               stationID,
		SpecialInstructions:     aggregate.SpecialInstructions(),
		AllergenAlerts:          aggregate.AllergenAlerts(),
		EstimatedCompletionTime: aggregate.EstimatedCompletionTime(),
		Version:                 aggregate.Version(),
		Items:                   items,
		CreatedAt:               aggregate.CreatedAt(),
		UpdatedAt:               aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a production contract aggregate.
func toDomain(dto ContractDTO) (*contract.ProductionContract, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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
	status, err := contract.StatusFromString(dto.Status)
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

	items := make([]contract.ProductionItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return contract.RestoreProductionContract(
		id,
		orderID,
		tenantID,
		items,
		priority,
		status,
		stationID,
		dto.SpecialInstructions,
		dto.AllergenAlerts,
		dto.EstimatedCompletionTime,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// itemToDomain converts a production item DTO to its domain value object.
func itemToDomain(dto ProductionItemDTO) (contract.ProductionItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return contract.ProductionItem{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return contract.ProductionItem{}, err
	}

	var recipeID *kernel.UUID
	if dto.RecipeID != nil {
		rID, recipeErr := kernel.UUIDFromBytes((*dto.RecipeID)[:])
		if recipeErr != nil {
			return contract.ProductionItem{}, recipeErr
		}
		recipeID = &rID
	}

	return contract.NewProductionItem(id, productID, recipeID, dto.Name,
		dto.Quantity, dto.Modifications, dto.Allergens, dto.EstimatedMinutes)
}
