package commands_test

import (
	"testing"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/pickup"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptPickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testRequest, err := pickup.NewRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewAcceptPickupCommand(testRequest.ID())
	require.NoError(t, err)

	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, testRequest.ID()).Return(testRequest, nil).Once(),
		pickupRepo.On("Update", ctx, testRequest).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptPickupCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pickup.Accepted, testRequest.Status())
	assert.NotNil(t, testRequest.AcceptedAt())
	pickupRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptPickupCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()

	testRequest, err := pickup.NewRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", time.Now())
	require.NoError(t, err)
	require.NoError(t, testRequest.Accept(time.Now()))

	cmd, err := commands.NewAcceptPickupCommand(testRequest.ID())
	require.NoError(t, err)

	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, testRequest.ID()).Return(testRequest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptPickupCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAcceptPickupCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptPickupCommand{}

	factory := new(MockPickupUoWFactory)
	handler := commands.NewAcceptPickupCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAcceptPickupCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAcceptPickupCommandHandler_Handle_RequestNotFound(t *testing.T) {
	ctx := t.Context()

	requestID := kernel.NewUUID()
	cmd, err := commands.NewAcceptPickupCommand(requestID)
	require.NoError(t, err)

	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", ctx, requestID).
			Return(nil, errs.NewObjectNotFoundError("pickup request", requestID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptPickupCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
