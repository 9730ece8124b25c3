package commands_test

import (
	"testing"

	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchPendingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingCommand()

	target := restoredParcel(t, 10, parcel.Pending, nil)
	agents := []*agent.Agent{
		restoredAgent(t, 1, agent.Active),
		restoredAgent(t, 2, agent.Active),
	}

	agentRepo := new(MockAgentRepository)
	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetAllInPendingStatus", mock.Anything).Return([]*parcel.Parcel{target}, nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("GetAllActive", mock.Anything).Return(agents, nil).Once(),
		parcelRepo.On("CountActiveByAgent", mock.Anything).Return(map[int64]int{1: 5}, nil).Once(),
		parcelRepo.On("Update", mock.Anything, target, parcel.Pending).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *parcel.HistoryEntry) bool {
			return e.ParcelID() == 10 && e.Next() == parcel.Assigned &&
				e.Observations() != nil && *e.Observations() == "automatic assignment"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchPendingCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// agent 1 is loaded, agent 2 wins
	assert.Equal(t, parcel.Assigned, target.Status())
	require.NotNil(t, target.AgentID())
	assert.Equal(t, int64(2), *target.AgentID())
	parcelRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchPendingCommandHandler_Handle_NoPendingParcels(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingCommand()

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetAllInPendingStatus", mock.Anything).Return([]*parcel.Parcel{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchPendingCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrNoPendingParcels)
}

func TestDispatchPendingCommandHandler_Handle_NoActiveAgents(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingCommand()

	target := restoredParcel(t, 10, parcel.Pending, nil)

	agentRepo := new(MockAgentRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetAllInPendingStatus", mock.Anything).Return([]*parcel.Parcel{target}, nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("GetAllActive", mock.Anything).Return([]*agent.Agent{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchPendingCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrNoActiveAgents)
	assert.Equal(t, parcel.Pending, target.Status())
}

func TestDispatchPendingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DispatchPendingCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewDispatchPendingCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}
