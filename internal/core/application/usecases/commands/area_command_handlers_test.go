package commands_test

import (
	"context"
	"testing"

	"bestcat/internal/core/application/usecases/commands"
	"bestcat/internal/core/domain/model/area"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/ports"
	"bestcat/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAreaUoW struct{ mock.Mock }

func (m *MockAreaUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAreaUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAreaUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAreaUoW) AreaRepository() ports.AreaRepository {
	args := m.Called()
	return args.Get(0).(ports.AreaRepository)
}

type MockAreaUoWFactory struct{ mock.Mock }

func (m *MockAreaUoWFactory) Create() commands.AreaUoW {
	args := m.Called()
	return args.Get(0).(commands.AreaUoW)
}

func TestNewCreateAreaCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateAreaCommand(id, "Seoul", "Downtown")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.AreaID())
	assert.Equal(t, "Seoul", cmd.City())
	assert.Equal(t, "Downtown", cmd.Name())
}

func TestNewCreateAreaCommand_EmptyCity(t *testing.T) {
	_, err := commands.NewCreateAreaCommand(kernel.NewUUID(), "", "Downtown")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCityIsRequired)
}

func TestCreateAreaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAreaCommand(kernel.NewUUID(), "Seoul", "Downtown")
	require.NoError(t, err)

	areaRepo := new(MockAreaRepository)
	uow := new(MockAreaUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AreaRepository").Return(areaRepo).Once()
	areaRepo.On("Add", mock.Anything, mock.MatchedBy(func(a *area.Area) bool {
		return a.City() == "Seoul" && a.Name() == "Downtown" && !a.IsDeleted()
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAreaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAreaCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	areaRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateAreaCommandHandler_Handle_DeletedAreaRejectsUpdate(t *testing.T) {
	ctx := t.Context()
	areaID := kernel.NewUUID()
	cmd, err := commands.NewUpdateAreaCommand(areaID, "Seoul", "Uptown")
	require.NoError(t, err)

	entity := liveArea(t, areaID)
	require.NoError(t, entity.Delete(kernel.NewUUID()))

	areaRepo := new(MockAreaRepository)
	uow := new(MockAreaUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AreaRepository").Return(areaRepo).Once()
	areaRepo.On("Get", mock.Anything, areaID).Return(entity, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAreaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAreaCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	areaRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteAreaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	areaID := kernel.NewUUID()
	deletedBy := kernel.NewUUID()
	cmd, err := commands.NewDeleteAreaCommand(areaID, deletedBy)
	require.NoError(t, err)

	entity := liveArea(t, areaID)

	areaRepo := new(MockAreaRepository)
	uow := new(MockAreaUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AreaRepository").Return(areaRepo).Once()
	areaRepo.On("Get", mock.Anything, areaID).Return(entity, nil).Once()
	areaRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *area.Area) bool {
		return a.IsDeleted() && a.DeletedBy() != nil && a.DeletedBy().IsEqual(deletedBy)
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAreaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteAreaCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	areaRepo.AssertExpectations(t)
}
