package commands_test

import (
	"context"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/location"
	"foodbridge/internal/core/domain/model/pickup"
	"foodbridge/internal/core/domain/model/restaurant"
	"foodbridge/internal/core/domain/model/user"
	"foodbridge/internal/core/domain/model/volunteer"
	"foodbridge/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDonationRepository struct{ mock.Mock }

func (m *MockDonationRepository) Add(ctx context.Context, d *donation.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDonationRepository) Update(ctx context.Context, d *donation.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donation.Donation), args.Error(1)
}

func (m *MockDonationRepository) GetAllInStatus(ctx context.Context, status donation.Status) ([]*donation.Donation, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*donation.Donation), args.Error(1)
}

func (m *MockDonationRepository) GetAllExpiring(ctx context.Context, now time.Time) ([]*donation.Donation, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*donation.Donation), args.Error(1)
}

func (m *MockDonationRepository) CountByRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonationRepository) ClearVolunteer(ctx context.Context, volunteerID kernel.UUID) error {
	args := m.Called(ctx, volunteerID)
	return args.Error(0)
}

func (m *MockDonationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPickupRequestRepository struct{ mock.Mock }

func (m *MockPickupRequestRepository) Add(ctx context.Context, r *pickup.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPickupRequestRepository) Update(ctx context.Context, r *pickup.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPickupRequestRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pickup.Request), args.Error(1)
}

func (m *MockPickupRequestRepository) GetActiveByDonation(ctx context.Context, donationID kernel.UUID) (*pickup.Request, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pickup.Request), args.Error(1)
}

func (m *MockPickupRequestRepository) GetAllByVolunteer(ctx context.Context, volunteerID kernel.UUID) ([]*pickup.Request, error) {
	args := m.Called(ctx, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pickup.Request), args.Error(1)
}

func (m *MockPickupRequestRepository) CountByVolunteer(ctx context.Context, volunteerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, volunteerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPickupRequestRepository) DeleteAllByDonation(ctx context.Context, donationID kernel.UUID) error {
	args := m.Called(ctx, donationID)
	return args.Error(0)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVolunteerRepository struct{ mock.Mock }

func (m *MockVolunteerRepository) Add(ctx context.Context, v *volunteer.Volunteer) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVolunteerRepository) Update(ctx context.Context, v *volunteer.Volunteer) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVolunteerRepository) Get(ctx context.Context, id kernel.UUID) (*volunteer.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*volunteer.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*volunteer.Volunteer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*volunteer.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) GetAllActive(ctx context.Context) ([]*location.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*location.Location), args.Error(1)
}

// MockUoW satisfies every narrowed unit-of-work interface in the package,
// so a single mock serves all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DonationRepository() ports.DonationRepository {
	args := m.Called()
	return args.Get(0).(ports.DonationRepository)
}

func (m *MockUoW) PickupRequestRepository() ports.PickupRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupRequestRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) VolunteerRepository() ports.VolunteerRepository {
	args := m.Called()
	return args.Get(0).(ports.VolunteerRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockDonationUoWFactory struct{ mock.Mock }

func (m *MockDonationUoWFactory) Create() commands.DonationUoW {
	args := m.Called()
	return args.Get(0).(commands.DonationUoW)
}

type MockPickupUoWFactory struct{ mock.Mock }

func (m *MockPickupUoWFactory) Create() commands.PickupUoW {
	args := m.Called()
	return args.Get(0).(commands.PickupUoW)
}

type MockRegistrationUoWFactory struct{ mock.Mock }

func (m *MockRegistrationUoWFactory) Create() commands.RegistrationUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistrationUoW)
}

type MockLocationUoWFactory struct{ mock.Mock }

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
