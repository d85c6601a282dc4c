package commands_test

import (
	"testing"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/pickup"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelPickupCommandHandler_Handle_PendingRequest(t *testing.T) {
	ctx := t.Context()

	testDonation := availableDonation(t)
	volunteerID := kernel.NewUUID()
	require.NoError(t, testDonation.Assign(volunteerID))

	testRequest, err := pickup.NewRequest(
		kernel.NewUUID(), testDonation.ID(), volunteerID, "", time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewCancelPickupCommand(testRequest.ID())
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		pickupRepo.On("Get", ctx, testRequest.ID()).Return(testRequest, nil).Once(),
		donationRepo.On("Get", ctx, testDonation.ID()).Return(testDonation, nil).Once(),
		donationRepo.On("Update", ctx, mock.AnythingOfType("*donation.Donation")).Return(nil).Once(),
		pickupRepo.On("Update", ctx, mock.AnythingOfType("*pickup.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelPickupCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pickup.Cancelled, testRequest.Status())
	assert.Equal(t, donation.Available, testDonation.Status())
	assert.Nil(t, testDonation.VolunteerID())
}

func TestCancelPickupCommandHandler_Handle_InProgressRequestReleasesDonation(t *testing.T) {
	ctx := t.Context()

	testDonation := availableDonation(t)
	volunteerID := kernel.NewUUID()

	now := time.Now()
	testRequest, err := pickup.NewRequest(
		kernel.NewUUID(), testDonation.ID(), volunteerID, "", now)
	require.NoError(t, err)
	require.NoError(t, testRequest.Accept(now))
	require.NoError(t, testRequest.Start(now))
	require.NoError(t, testDonation.Assign(volunteerID))
	require.NoError(t, testDonation.MarkPickedUp(now))

	cmd, err := commands.NewCancelPickupCommand(testRequest.ID())
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		pickupRepo.On("Get", ctx, testRequest.ID()).Return(testRequest, nil).Once(),
		donationRepo.On("Get", ctx, testDonation.ID()).Return(testDonation, nil).Once(),
		donationRepo.On("Update", ctx, mock.AnythingOfType("*donation.Donation")).Return(nil).Once(),
		pickupRepo.On("Update", ctx, mock.AnythingOfType("*pickup.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelPickupCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pickup.Cancelled, testRequest.Status())
	assert.Equal(t, donation.Available, testDonation.Status())
	assert.Nil(t, testDonation.VolunteerID())
	assert.Nil(t, testDonation.PickupTime())
}

func TestCancelPickupCommandHandler_Handle_AssignedDonationReleased(t *testing.T) {
	ctx := t.Context()

	testDonation := availableDonation(t)
	volunteerID := kernel.NewUUID()

	testRequest, err := pickup.NewRequest(
		kernel.NewUUID(), testDonation.ID(), volunteerID, "", time.Now())
	require.NoError(t, err)
	require.NoError(t, testRequest.Accept(time.Now()))
	require.NoError(t, testDonation.Assign(volunteerID))

	cmd, err := commands.NewCancelPickupCommand(testRequest.ID())
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		pickupRepo.On("Get", ctx, testRequest.ID()).Return(testRequest, nil).Once(),
		donationRepo.On("Get", ctx, testDonation.ID()).Return(testDonation, nil).Once(),
		donationRepo.On("Update", ctx, mock.AnythingOfType("*donation.Donation")).Return(nil).Once(),
		pickupRepo.On("Update", ctx, mock.AnythingOfType("*pickup.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelPickupCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pickup.Cancelled, testRequest.Status())
	assert.Equal(t, donation.Available, testDonation.Status())
	assert.Nil(t, testDonation.VolunteerID())
}

func TestCancelPickupCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()

	testDonation := availableDonation(t)
	volunteerID := kernel.NewUUID()

	testRequest, err := pickup.NewRequest(
		kernel.NewUUID(), testDonation.ID(), volunteerID, "", time.Now())
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, testRequest.Accept(now))
	require.NoError(t, testRequest.Start(now))
	require.NoError(t, testRequest.Complete(now))

	cmd, err := commands.NewCancelPickupCommand(testRequest.ID())
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		pickupRepo.On("Get", ctx, testRequest.ID()).Return(testRequest, nil).Once(),
		donationRepo.On("Get", ctx, testDonation.ID()).Return(testDonation, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelPickupCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
}
