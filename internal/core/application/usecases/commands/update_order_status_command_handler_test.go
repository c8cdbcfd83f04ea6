package commands_test

import (
	"testing"

	"kitchenops/internal/core/application/usecases/commands"
	"kitchenops/internal/core/domain/model/kernel"
	"kitchenops/internal/core/domain/model/order"
	"kitchenops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	ready := orderInStatus(t, tenantID, order.Ready)

	cmd, err := commands.NewUpdateOrderStatusCommand(ready.ID(), tenantID, order.Delivering, "left with rider 12")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tenantID, ready.ID()).Return(ready, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, ready).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Delivering, ready.Status())
	require.Equal(t, "left with rider 12", ready.StatusNotes())
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	draft := orderInStatus(t, tenantID, order.Draft)

	cmd, err := commands.NewUpdateOrderStatusCommand(draft.ID(), tenantID, order.Delivered, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tenantID, draft.ID()).Return(draft, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestNewUpdateOrderStatusCommand_Validation(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), order.Unknown, "")
	require.Error(t, err)

	_, err = commands.NewUpdateOrderStatusCommand(kernel.UUID{}, kernel.NewUUID(), order.Cancelled, "")
	require.Error(t, err)
}
