package commands

import (
	"context"

	"kitchenops/internal/core/domain/model/station"
)

// CreateStationCommandHandler handles station registration.
type CreateStationCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewCreateStationCommandHandler creates a handler for station registration.
func NewCreateStationCommandHandler(uowFactory StationUoWFactory) CreateStationCommandHandler {
	return CreateStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the station registration command.
func (h *CreateStationCommandHandler) Handle(ctx context.Context, cmd CreateStationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := station.NewStation(cmd.StationID(), cmd.TenantID(), cmd.Name(), cmd.Type(), cmd.Capacity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
