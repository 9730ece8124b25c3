package commands_test

import (
	"testing"

	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewConfirmDeliveryCommand(10, 20.6, -100.4, strPtr("photo-ref"), strPtr("signed"))
	require.NoError(t, err)

	target := restoredParcel(t, 10, parcel.EnRoute, i64Ptr(3))

	parcelRepo := new(MockParcelRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, int64(10)).Return(target, nil).Once(),
		parcelRepo.On("Update", mock.Anything, target, parcel.EnRoute).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *parcel.HistoryEntry) bool {
			return e.Previous() != nil && *e.Previous() == parcel.EnRoute && e.Next() == parcel.Delivered
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, parcel.Delivered, target.Status())
	require.NotNil(t, target.DeliveryPoint())
	assert.InDelta(t, 20.6, target.DeliveryPoint().Latitude(), 0)
	assert.Equal(t, "photo-ref", *target.EvidencePhoto())
	parcelRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_PendingParcel(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewConfirmDeliveryCommand(10, 20.6, -100.4, nil, nil)
	require.NoError(t, err)

	target := restoredParcel(t, 10, parcel.Pending, nil)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, int64(10)).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), parcel.ErrInvalidTransition)
	assert.Equal(t, parcel.Pending, target.Status())
}

func TestConfirmDeliveryCommandHandler_Handle_UnknownParcel(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewConfirmDeliveryCommand(99, 20.6, -100.4, nil, nil)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("parcelId", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestNewConfirmDeliveryCommand_Validation(t *testing.T) {
	t.Run("rejects out-of-range coordinates before any storage access", func(t *testing.T) {
		_, err := commands.NewConfirmDeliveryCommand(10, 95, -100.4, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = commands.NewConfirmDeliveryCommand(10, 20.6, 181, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects invalid parcel id", func(t *testing.T) {
		_, err := commands.NewConfirmDeliveryCommand(0, 20.6, -100.4, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		cmd := commands.ConfirmDeliveryCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrConfirmDeliveryCommandIsNotConstructed)
	})
}
