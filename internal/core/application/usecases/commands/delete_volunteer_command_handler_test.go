package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteVolunteerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	volunteerID := kernel.NewUUID()
	cmd, err := commands.NewDeleteVolunteerCommand(volunteerID)
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	volunteerRepo := new(MockVolunteerRepository)
	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		pickupRepo.On("CountByVolunteer", ctx, volunteerID).Return(int64(0), nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("ClearVolunteer", ctx, volunteerID).Return(nil).Once(),
		uow.On("VolunteerRepository").Return(volunteerRepo).Once(),
		volunteerRepo.On("Delete", ctx, volunteerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteVolunteerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	donationRepo.AssertExpectations(t)
	volunteerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteVolunteerCommandHandler_Handle_PickupRequestsStillReference(t *testing.T) {
	ctx := t.Context()

	volunteerID := kernel.NewUUID()
	cmd, err := commands.NewDeleteVolunteerCommand(volunteerID)
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		pickupRepo.On("CountByVolunteer", ctx, volunteerID).Return(int64(3), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteVolunteerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrReferentialIntegrity)
	donationRepo.AssertNotCalled(t, "ClearVolunteer", ctx, volunteerID)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeleteVolunteerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteVolunteerCommand{}

	factory := new(MockUoWFactory)
	handler := commands.NewDeleteVolunteerCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeleteVolunteerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
