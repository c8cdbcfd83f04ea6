// Package stationrepo provides data transfer objects and mapping functions for
// station persistence. This package implements the repository pattern for the
// station aggregate, including the atomic load counter adjustments used by
// station assignment.
package stationrepo

import (
	"time"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// StationDTO represents the database structure for persisting station
// aggregates. The current_load column is only ever changed through
// guarded relative updates so concurrent assignments cannot exceed
// capacity.
type StationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	StationType string    `gorm:"type:varchar(32);not null"`
	Capacity    int       `gorm:"type:int;not null"`
	CurrentLoad int       `gorm:"type:int;not null"`
	Active      bool      `gorm:"type:boolean;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for station entities.
func (StationDTO) TableName() string {
	return "stations"
}

// fromDomain converts a station aggregate to its database representation.
func fromDomain(aggregate *station.Station) StationDTO {
	return StationDTO{
		ID:          aggregate.ID().Bytes(),
		TenantID:    aggregate.TenantID().Bytes(),
		Name:        aggregate.Name(),
		StationType: string(aggregate.Type()),
		Capacity:    aggregate.Capacity(),
		CurrentLoad: aggregate.CurrentLoad(),
		Active:      aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a station aggregate.
func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	stationType, err := station.TypeFromString(dto.StationType)
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(id, tenantID, dto.Name, stationType,
		dto.Capacity, dto.CurrentLoad, dto.Active, dto.CreatedAt, dto.UpdatedAt)
}
