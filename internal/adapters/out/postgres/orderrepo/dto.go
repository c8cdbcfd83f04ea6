// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by tenant and status.
type OrderDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	TenantID        uuid.UUID     `gorm:"type:uuid;not null;index"`
	Number          int64         `gorm:"type:bigint;not null"`
	CustomerID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	Channel         string        `gorm:"type:varchar(32);not null"`
	Status          string        `gorm:"type:varchar(32);not null;index"`
	StatusNotes     string        `gorm:"type:text"`
	PaymentMethod   string        `gorm:"type:varchar(32)"`
	PaymentPaid     bool          `gorm:"type:boolean"`
	PaymentAmount   int64         `gorm:"type:bigint"`
	DeliveryMode    string        `gorm:"type:varchar(32)"`
	DeliveryAddress string        `gorm:"type:varchar(512)"`
	DeliveryFee     int64         `gorm:"type:bigint"`
	Items           []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time     `gorm:"not null"`
	UpdatedAt       time.Time     `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one ordered product within the order. String
// slices are stored as JSON columns via the GORM serializer.
type LineItemDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Quantity      int       `gorm:"type:int;not null"`
	UnitPriceCent int64     `gorm:"type:bigint;not null"`
	Modifications []string  `gorm:"serializer:json"`
	Extras        []string  `gorm:"serializer:json"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			OrderID:       orderID,
			ProductID:     item.ProductID().Bytes(),
			Name:          item.Name(),
			Quantity:      item.Quantity(),
			UnitPriceCent: item.UnitPriceCent(),
			Modifications: item.Modifications(),
			Extras:        item.Extras(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		TenantID:        aggregate.TenantID().Bytes(),
		Number:          aggregate.Number(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Channel:         string(aggregate.Channel()),
		Status:          aggregate.Status().String(),
		StatusNotes:     aggregate.StatusNotes(),
		PaymentMethod:   aggregate.Payment().Method,
		PaymentPaid:     aggregate.Payment().Paid,
		PaymentAmount:   aggregate.Payment().AmountCent,
		DeliveryMode:    aggregate.Delivery().Mode,
		DeliveryAddress: aggregate.Delivery().Address,
		DeliveryFee:     aggregate.Delivery().FeeCent,
		Items:           items,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDto.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewLineItem(productID, itemDto.Name, itemDto.Quantity,
			itemDto.UnitPriceCent, itemDto.Modifications, itemDto.Extras)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		tenantID,
		dto.Number,
		customerID,
		order.Channel(dto.Channel),
		items,
		order.PaymentSummary{
			Method:     dto.PaymentMethod,
			Paid:       dto.PaymentPaid,
			AmountCent: dto.PaymentAmount,
		},
		order.DeliverySummary{
			Mode:    dto.DeliveryMode,
			Address: dto.DeliveryAddress,
			FeeCent: dto.DeliveryFee,
		},
		status,
		dto.StatusNotes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
