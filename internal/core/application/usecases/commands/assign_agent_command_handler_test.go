package commands_test

import (
	"testing"

	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignAgentCommand(10, 3)

	assignee := restoredAgent(t, 3, agent.Active)
	target := restoredParcel(t, 10, parcel.Pending, nil)

	agentRepo := new(MockAgentRepository)
	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", mock.Anything, int64(3)).Return(assignee, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, int64(10)).Return(target, nil).Once(),
		parcelRepo.On("Update", mock.Anything, target, parcel.Pending).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *parcel.HistoryEntry) bool {
			return e.ParcelID() == 10 && e.Previous() != nil &&
				*e.Previous() == parcel.Pending && e.Next() == parcel.Assigned
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, parcel.Assigned, target.Status())
	parcelRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignAgentCommandHandler_Handle_InactiveAgentIsAllowed(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignAgentCommand(10, 3)

	// pre-assignment to a deactivated agent is legal, only login checks
	// the active flag
	assignee := restoredAgent(t, 3, agent.Inactive)
	target := restoredParcel(t, 10, parcel.Pending, nil)

	agentRepo := new(MockAgentRepository)
	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", mock.Anything, int64(3)).Return(assignee, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, int64(10)).Return(target, nil).Once(),
		parcelRepo.On("Update", mock.Anything, target, parcel.Pending).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, parcel.Assigned, target.Status())
	uow.AssertExpectations(t)
}

func TestAssignAgentCommandHandler_Handle_TerminalParcel(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignAgentCommand(10, 3)

	assignee := restoredAgent(t, 3, agent.Active)
	target := restoredParcel(t, 10, parcel.Cancelled, nil)

	agentRepo := new(MockAgentRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", mock.Anything, int64(3)).Return(assignee, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, int64(10)).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), parcel.ErrInvalidTransition)
}

func TestAssignAgentCommandHandler_Handle_ConcurrentConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignAgentCommand(10, 3)

	assignee := restoredAgent(t, 3, agent.Active)
	target := restoredParcel(t, 10, parcel.Pending, nil)

	agentRepo := new(MockAgentRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", mock.Anything, int64(3)).Return(assignee, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, int64(10)).Return(target, nil).Once(),
		parcelRepo.On("Update", mock.Anything, target, parcel.Pending).
			Return(errs.NewConcurrencyConflictError("parcelId", int64(10))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConcurrencyConflict)
	uow.AssertExpectations(t)
}

func TestNewAssignAgentCommand_Validation(t *testing.T) {
	_, err := commands.NewAssignAgentCommand(0, 3)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAssignAgentCommand(10, -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd := commands.AssignAgentCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrAssignAgentCommandIsNotConstructed)
}
