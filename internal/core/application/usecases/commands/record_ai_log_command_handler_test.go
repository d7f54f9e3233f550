package commands_test

import (
	"context"
	"testing"

	"bestcat/internal/core/application/usecases/commands"
	"bestcat/internal/core/domain/model/ailog"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAiLogUoW struct{ mock.Mock }

func (m *MockAiLogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAiLogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAiLogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAiLogUoW) AiLogRepository() ports.AiLogRepository {
	args := m.Called()
	return args.Get(0).(ports.AiLogRepository)
}

type MockAiLogUoWFactory struct{ mock.Mock }

func (m *MockAiLogUoWFactory) Create() commands.AiLogUoW {
	args := m.Called()
	return args.Get(0).(commands.AiLogUoW)
}

func TestNewRecordAiLogCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRecordAiLogCommand(id, "recommend lunch", "try the tuna bowl")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.LogID())
	assert.Equal(t, "recommend lunch", cmd.RequestText())
	assert.Equal(t, "try the tuna bowl", cmd.ResponseText())
}

func TestNewRecordAiLogCommand_EmptyRequestText(t *testing.T) {
	_, err := commands.NewRecordAiLogCommand(kernel.NewUUID(), "", "answer")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRequestTextIsRequired)
}

func TestRecordAiLogCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordAiLogCommand(kernel.NewUUID(), "recommend lunch", "")
	require.NoError(t, err)

	repo := new(MockAiLogRepository)
	uow := new(MockAiLogUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AiLogRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.MatchedBy(func(l *ailog.AiLog) bool {
		return l.RequestText() == "recommend lunch" && l.ResponseText() == ""
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAiLogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordAiLogCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}
