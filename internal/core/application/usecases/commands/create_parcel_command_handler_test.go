package commands_test

import (
	"testing"

	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateParcelCommand(
		"PKG2024001", "Av. Pie de la Cuesta 2501", "Juan Perez", nil, nil, nil, nil)

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*parcel.Parcel)
				require.NoError(t, p.AttachID(10))
			}).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *parcel.HistoryEntry) bool {
			return e.ParcelID() == 10 && e.Previous() == nil && e.Next() == parcel.Pending
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	parcelRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_WithAgent(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateParcelCommand(
		"PKG2024001", "Av. Pie de la Cuesta 2501", "Juan Perez", nil, nil, nil, i64Ptr(3))

	assignee := restoredAgent(t, 3, agent.Active)

	agentRepo := new(MockAgentRepository)
	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	var entries []*parcel.HistoryEntry
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", mock.Anything, int64(3)).Return(assignee, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", mock.Anything, mock.MatchedBy(func(p *parcel.Parcel) bool {
			return p.Status() == parcel.Assigned && p.AgentID() != nil && *p.AgentID() == 3
		})).Run(func(args mock.Arguments) {
			p := args.Get(1).(*parcel.Parcel)
			require.NoError(t, p.AttachID(10))
		}).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.HistoryEntry")).
			Run(func(args mock.Arguments) {
				entries = append(entries, args.Get(1).(*parcel.HistoryEntry))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)

	// a pre-assigned parcel never held pending, so the ledger gets exactly one
	// entry recording the assigned status it was created in
	require.Len(t, entries, 1)
	assert.Equal(t, int64(10), entries[0].ParcelID())
	assert.Nil(t, entries[0].Previous())
	assert.Equal(t, parcel.Assigned, entries[0].Next())

	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_InactiveAgentIsAllowed(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateParcelCommand(
		"PKG2024001", "Av. Pie de la Cuesta 2501", "Juan Perez", nil, nil, nil, i64Ptr(3))

	// creating a parcel pre-assigned to a deactivated agent is legal, only
	// login checks the active flag
	assignee := restoredAgent(t, 3, agent.Inactive)

	agentRepo := new(MockAgentRepository)
	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", mock.Anything, int64(3)).Return(assignee, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", mock.Anything, mock.MatchedBy(func(p *parcel.Parcel) bool {
			return p.Status() == parcel.Assigned && p.AgentID() != nil && *p.AgentID() == 3
		})).Run(func(args mock.Arguments) {
			p := args.Get(1).(*parcel.Parcel)
			require.NoError(t, p.AttachID(10))
		}).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *parcel.HistoryEntry) bool {
			return e.Previous() == nil && e.Next() == parcel.Assigned
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_UnknownAgent(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateParcelCommand(
		"PKG2024001", "Av. Pie de la Cuesta 2501", "Juan Perez", nil, nil, nil, i64Ptr(99))

	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", mock.Anything, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("agentId", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateParcelCommandHandler_Handle_InvalidParcel(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateParcelCommand(
		"PK", "Av. Pie de la Cuesta 2501", "Juan Perez", nil, nil, nil, nil)
	require.NoError(t, err) // length bounds are the aggregate's concern

	factory := new(MockUoWFactory)
	h := commands.NewCreateParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreateParcelCommand_Validation(t *testing.T) {
	_, err := commands.NewCreateParcelCommand("", "Av. Pie de la Cuesta 2501", "Juan", nil, nil, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateParcelCommand("PKG001", "Av. Pie de la Cuesta 2501", "Juan", nil, nil, nil, i64Ptr(0))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd := commands.CreateParcelCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateParcelCommandIsNotConstructed)
}
