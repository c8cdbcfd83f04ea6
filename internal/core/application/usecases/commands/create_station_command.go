package commands

import (
	"errors"
	"fmt"

	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/station"
	"kitchenops/internal/pkg/errs"
	"kitchenops/internal/pkg/guard"
)

var ErrCreateStationCommandIsNotConstructed = errors.New(
	"CreateStationCommand must be created via NewCreateStationCommand constructor",
)

// CreateStationCommand represents a request to register a new kitchen
// station. New stations start active with zero load.
type CreateStationCommand struct { //nolint:recvcheck //using for validation
	stationID   kernel.UUID
	tenantID    kernel.UUID
	name        string
	stationType station.Type
	capacity    int

	guard guard.ConstructorGuard
}

// NewCreateStationCommand creates a command to register a station.
func NewCreateStationCommand(
	stationID kernel.UUID,
	tenantID kernel.UUID,
	name string,
	stationType station.Type,
	capacity int,
) (CreateStationCommand, error) {
	cmd := CreateStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStationID(stationID),
		cmd.setTenantID(tenantID),
		cmd.setName(name),
		cmd.setType(stationType),
		cmd.setCapacity(capacity),
	); err != nil {
		return CreateStationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStationCommand) Validate() error {
	return c.guard.Validate(ErrCreateStationCommandIsNotConstructed)
}

// StationID returns the unique identifier for the new station.
func (c CreateStationCommand) StationID() kernel.UUID {
	return c.stationID
}

// TenantID returns the owning tenant.
func (c CreateStationCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Name returns the station display name.
func (c CreateStationCommand) Name() string {
	return c.name
}

// Type returns the kind of work the station performs.
func (c CreateStationCommand) Type() station.Type {
	return c.stationType
}

// Capacity returns the concurrent order bound.
func (c CreateStationCommand) Capacity() int {
	return c.capacity
}

func (c *CreateStationCommand) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	c.stationID = stationID
	return nil
}

func (c *CreateStationCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateStationCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateStationCommand) setType(stationType station.Type) error {
	if err := stationType.Validate(); err != nil {
		return err
	}

	c.stationType = stationType
	return nil
}

func (c *CreateStationCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}

	c.capacity = capacity
	return nil
}
