package commands

import (
	"errors"
	"time"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/kitchenorder"
	"kitchenops/internal/pkg/guard"
)

var ErrUpdateKitchenOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateKitchenOrderStatusCommand must be created via NewUpdateKitchenOrderStatusCommand constructor",
)

// ErrStationIsRequiredForAssignment is returned when the target status
// is assigned but no station was given.
var ErrStationIsRequiredForAssignment = errors.New("station is required to move a kitchen order to assigned")

// UpdateKitchenOrderStatusCommand represents a request to move a kitchen
// order to a new status. Station is required when the target status is
// assigned (manual assignment or reassignment) and ignored otherwise.
// The optional estimated completion time is carried into the published
// event for display clients.
type UpdateKitchenOrderStatusCommand struct { //nolint:recvcheck //using for validation
	kitchenOrderID          kernel.UUID
	tenantID                kernel.UUID
	status                  kitchenorder.Status
	stationID               *kernel.UUID
	estimatedCompletionTime *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateKitchenOrderStatusCommand creates a command to change a
// kitchen order's status.
func NewUpdateKitchenOrderStatusCommand(
	kitchenOrderID kernel.UUID,
	tenantID kernel.UUID,
	status kitchenorder.Status,
	stationID *kernel.UUID,
	estimatedCompletionTime *time.Time,
) (UpdateKitchenOrderStatusCommand, error) {
	cmd := UpdateKitchenOrderStatusCommand{
		estimatedCompletionTime: estimatedCompletionTime,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKitchenOrderID(kitchenOrderID),
		cmd.setTenantID(tenantID),
		cmd.setStatus(status),
		cmd.setStationID(stationID),
	); err != nil {
		return UpdateKitchenOrderStatusCommand{}, err
	}

	if cmd.status == kitchenorder.StatusAssigned && cmd.stationID == nil {
		return UpdateKitchenOrderStatusCommand{}, ErrStationIsRequiredForAssignment
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateKitchenOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateKitchenOrderStatusCommandIsNotConstructed)
}

// KitchenOrderID returns the kitchen order to update.
func (c UpdateKitchenOrderStatusCommand) KitchenOrderID() kernel.UUID {
	return c.kitchenOrderID
}

// TenantID returns the owning tenant.
func (c UpdateKitchenOrderStatusCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Status returns the target kitchen status.
func (c UpdateKitchenOrderStatusCommand) Status() kitchenorder.Status {
	return c.status
}

// StationID returns the station for assignment moves, or nil.
func (c UpdateKitchenOrderStatusCommand) StationID() *kernel.UUID {
	return c.stationID
}

// EstimatedCompletionTime returns the display ETA, or nil.
func (c UpdateKitchenOrderStatusCommand) EstimatedCompletionTime() *time.Time {
	return c.estimatedCompletionTime
}

func (c *UpdateKitchenOrderStatusCommand) setKitchenOrderID(kitchenOrderID kernel.UUID) error {
	if err := kitchenOrderID.Validate(); err != nil {
		return err
	}

	c.kitchenOrderID = kitchenOrderID
	return nil
}

func (c *UpdateKitchenOrderStatusCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *UpdateKitchenOrderStatusCommand) setStatus(status kitchenorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateKitchenOrderStatusCommand) setStationID(stationID *kernel.UUID) error {
	if stationID == nil {
		return nil
	}
	if err := stationID.Validate(); err != nil {
		return err
	}

	c.stationID = stationID
	return nil
}
