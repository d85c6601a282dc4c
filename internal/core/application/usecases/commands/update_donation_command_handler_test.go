package commands_test

import (
	"testing"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDonationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDonation := availableDonation(t)
	originalQuantity := testDonation.Quantity()

	foodItem := "Fruit baskets"
	weight := 18.5
	cmd, err := commands.NewUpdateDonationCommand(
		testDonation.ID(), &foodItem, nil, &weight, nil, nil)
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("Get", ctx, testDonation.ID()).Return(testDonation, nil).Once(),
		donationRepo.On("Update", ctx, testDonation).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDonationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Fruit baskets", testDonation.FoodItem())
	assert.InDelta(t, 18.5, testDonation.Weight(), 0.0001)
	assert.Equal(t, originalQuantity, testDonation.Quantity())
	donationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDonationCommandHandler_Handle_ConcurrencyConflict(t *testing.T) {
	ctx := t.Context()

	testDonation := availableDonation(t)

	quantity := 5
	cmd, err := commands.NewUpdateDonationCommand(
		testDonation.ID(), nil, &quantity, nil, nil, nil)
	require.NoError(t, err)

	conflict := errs.NewConcurrencyConflictError("donation", testDonation.ID().String())

	donationRepo := new(MockDonationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("Get", ctx, testDonation.ID()).Return(testDonation, nil).Once(),
		donationRepo.On("Update", ctx, testDonation).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDonationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateDonationCommandHandler_Handle_TerminalDonation(t *testing.T) {
	ctx := t.Context()

	testDonation := availableDonation(t)
	require.NoError(t, testDonation.Assign(kernel.NewUUID()))
	require.NoError(t, testDonation.MarkPickedUp(time.Now().UTC()))
	require.NoError(t, testDonation.Complete(time.Now().UTC()))

	foodItem := "Fruit baskets"
	cmd, err := commands.NewUpdateDonationCommand(
		testDonation.ID(), &foodItem, nil, nil, nil, nil)
	require.NoError(t, err)

	donationRepo := new(MockDonationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("Get", ctx, testDonation.ID()).Return(testDonation, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDonationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, donation.Completed, testDonation.Status())
	donationRepo.AssertNotCalled(t, "Update", ctx, testDonation)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateDonationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateDonationCommand{}

	factory := new(MockDonationUoWFactory)
	handler := commands.NewUpdateDonationCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateDonationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
