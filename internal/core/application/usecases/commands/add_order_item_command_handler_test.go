package commands_test

import (
	"testing"

	"bestcat/internal/core/application/usecases/commands"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/order"
	"bestcat/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T, storeID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 1, 500)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), storeID,
		order.Delivery, "123 Main St", "", []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestNewAddOrderItemCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	menuID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderItemCommand(orderID, menuID, 3)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, menuID, cmd.MenuID())
	assert.Equal(t, 3, cmd.Quantity())
}

func TestNewAddOrderItemCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestAddOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	menuID := kernel.NewUUID()
	aggregate := placedOrder(t, storeID)
	cmd, err := commands.NewAddOrderItemCommand(aggregate.ID(), menuID, 2)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockOrderingUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	menuRepo.On("Get", mock.Anything, menuID).Return(storeMenu(t, menuID, storeID, 700), nil).Once()
	orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return len(o.Items()) == 2
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_OrderAlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	menuID := kernel.NewUUID()
	aggregate := placedOrder(t, storeID)
	require.NoError(t, aggregate.TransitionTo(order.Accepted))
	cmd, err := commands.NewAddOrderItemCommand(aggregate.ID(), menuID, 1)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockOrderingUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	menuRepo.On("Get", mock.Anything, menuID).Return(storeMenu(t, menuID, storeID, 700), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_MenuFromAnotherStore(t *testing.T) {
	ctx := t.Context()
	menuID := kernel.NewUUID()
	aggregate := placedOrder(t, kernel.NewUUID())
	cmd, err := commands.NewAddOrderItemCommand(aggregate.ID(), menuID, 1)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockOrderingUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	menuRepo.On("Get", mock.Anything, menuID).
		Return(storeMenu(t, menuID, kernel.NewUUID(), 700), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}
