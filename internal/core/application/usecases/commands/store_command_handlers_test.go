package commands_test

import (
	"context"
	"testing"

	"bestcat/internal/core/application/usecases/commands"
	"bestcat/internal/core/domain/model/area"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/store"
	"bestcat/internal/core/ports"
	"bestcat/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStoreUoW struct{ mock.Mock }

func (m *MockStoreUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStoreUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStoreUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStoreUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}
func (m *MockStoreUoW) AreaRepository() ports.AreaRepository {
	args := m.Called()
	return args.Get(0).(ports.AreaRepository)
}

type MockStoreUoWFactory struct{ mock.Mock }

func (m *MockStoreUoWFactory) Create() commands.StoreUoW {
	args := m.Called()
	return args.Get(0).(commands.StoreUoW)
}

func liveArea(t *testing.T, id kernel.UUID) *area.Area {
	t.Helper()
	a, err := area.NewArea(id, "Seoul", "Downtown")
	require.NoError(t, err)
	return a
}

func TestNewCreateStoreCommand_ValidInput(t *testing.T) {
	storeID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	areaID := kernel.NewUUID()
	categories := []kernel.UUID{kernel.NewUUID()}

	cmd, err := commands.NewCreateStoreCommand(storeID, ownerID, areaID,
		"Cat Diner", "1 Harbor Rd", categories)
	require.NoError(t, err)
	assert.Equal(t, storeID, cmd.StoreID())
	assert.Equal(t, ownerID, cmd.OwnerID())
	assert.Equal(t, areaID, cmd.AreaID())
	assert.Equal(t, "Cat Diner", cmd.Name())
	assert.Equal(t, "1 Harbor Rd", cmd.Address())
	assert.Equal(t, categories, cmd.CategoryIDs())
}

func TestNewCreateStoreCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateStoreCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"", "1 Harbor Rd", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestCreateStoreCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	areaID := kernel.NewUUID()
	cmd, err := commands.NewCreateStoreCommand(kernel.NewUUID(), kernel.NewUUID(), areaID,
		"Cat Diner", "1 Harbor Rd", nil)
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	areaRepo := new(MockAreaRepository)
	uow := new(MockStoreUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AreaRepository").Return(areaRepo).Once()
	areaRepo.On("Get", mock.Anything, areaID).Return(liveArea(t, areaID), nil).Once()
	uow.On("StoreRepository").Return(storeRepo).Once()
	storeRepo.On("Add", mock.Anything, mock.MatchedBy(func(s *store.Store) bool {
		return s.Name() == "Cat Diner" && !s.IsDeleted()
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStoreCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	storeRepo.AssertExpectations(t)
	areaRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateStoreCommandHandler_Handle_DeletedArea(t *testing.T) {
	ctx := t.Context()
	areaID := kernel.NewUUID()
	cmd, err := commands.NewCreateStoreCommand(kernel.NewUUID(), kernel.NewUUID(), areaID,
		"Cat Diner", "1 Harbor Rd", nil)
	require.NoError(t, err)

	deletedArea := liveArea(t, areaID)
	require.NoError(t, deletedArea.Delete(kernel.NewUUID()))

	areaRepo := new(MockAreaRepository)
	uow := new(MockStoreUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AreaRepository").Return(areaRepo).Once()
	areaRepo.On("Get", mock.Anything, areaID).Return(deletedArea, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStoreCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateStoreCommandHandler_Handle_DeletedStoreRejectsUpdate(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	areaID := kernel.NewUUID()
	cmd, err := commands.NewUpdateStoreCommand(storeID, areaID, "New Name", "2 Harbor Rd", nil)
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	areaRepo := new(MockAreaRepository)
	uow := new(MockStoreUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StoreRepository").Return(storeRepo).Once()
	storeRepo.On("Get", mock.Anything, storeID).Return(deletedStore(t, storeID), nil).Once()
	uow.On("AreaRepository").Return(areaRepo).Once()
	areaRepo.On("Get", mock.Anything, areaID).Return(liveArea(t, areaID), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStoreCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	storeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteStoreCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	deletedBy := kernel.NewUUID()
	cmd, err := commands.NewDeleteStoreCommand(storeID, deletedBy)
	require.NoError(t, err)

	entity := liveStore(t, storeID)

	storeRepo := new(MockStoreRepository)
	uow := new(MockStoreUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StoreRepository").Return(storeRepo).Once()
	storeRepo.On("Get", mock.Anything, storeID).Return(entity, nil).Once()
	storeRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *store.Store) bool {
		return s.IsDeleted() && s.DeletedBy() != nil && s.DeletedBy().IsEqual(deletedBy)
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteStoreCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	storeRepo.AssertExpectations(t)
}

func TestDeleteStoreCommandHandler_Handle_AlreadyDeletedIsNoOp(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	cmd, err := commands.NewDeleteStoreCommand(storeID, kernel.NewUUID())
	require.NoError(t, err)

	entity := deletedStore(t, storeID)
	originalDeletedBy := *entity.DeletedBy()

	storeRepo := new(MockStoreRepository)
	uow := new(MockStoreUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StoreRepository").Return(storeRepo).Once()
	storeRepo.On("Get", mock.Anything, storeID).Return(entity, nil).Once()
	storeRepo.On("Update", mock.Anything, entity).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteStoreCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.True(t, entity.DeletedBy().IsEqual(originalDeletedBy),
		"repeated delete must keep the original stamp")
}
