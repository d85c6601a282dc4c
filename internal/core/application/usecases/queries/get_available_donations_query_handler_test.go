package queries_test

import (
	"context"
	"testing"
	"time"

	"foodbridge/internal/adapters/out/postgres/donationrepo"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data through the
// repository.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetAvailableDonationsQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetAvailableDonationsQueryHandler
	donationRepo *donationrepo.GormDonationRepository
}

func (suite *GetAvailableDonationsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&donationrepo.DonationDTO{}))

	suite.handler = queries.NewGetAvailableDonationsQueryHandler(db)
	suite.donationRepo = donationrepo.NewGormDonationRepository(db, &mockAggregateTracker{})
}

func (suite *GetAvailableDonationsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE food_donations CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAvailableDonationsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAvailableDonationsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAvailableDonationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAvailableDonationsQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyAvailable() {
	available1 := suite.seedDonation(donation.Available, 2*time.Hour)
	available2 := suite.seedDonation(donation.Available, 5*time.Hour)
	suite.seedDonation(donation.Assigned, 3*time.Hour)
	suite.seedDonation(donation.Completed, 4*time.Hour)
	suite.seedDonation(donation.Expired, -time.Hour)

	query := queries.NewGetAvailableDonationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[available1.ID()])
	suite.True(resultIDs[available2.ID()])
}

func (suite *GetAvailableDonationsQueryHandlerTestSuite) TestHandle_ResultsSortedByExpiryDate() {
	later := suite.seedDonation(donation.Available, 9*time.Hour)
	soonest := suite.seedDonation(donation.Available, time.Hour)
	middle := suite.seedDonation(donation.Available, 4*time.Hour)

	query := queries.NewGetAvailableDonationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(soonest.ID(), result[0].ID)
	suite.Equal(middle.ID(), result[1].ID)
	suite.Equal(later.ID(), result[2].ID)
}

func (suite *GetAvailableDonationsQueryHandlerTestSuite) TestHandle_MapsRowFields() {
	seeded := suite.seedDonation(donation.Available, 6*time.Hour)

	query := queries.NewGetAvailableDonationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.Equal(seeded.ID(), row.ID)
	suite.Equal(seeded.RestaurantID(), row.RestaurantID)
	suite.Equal(seeded.FoodItem(), row.FoodItem)
	suite.Equal(seeded.Quantity(), row.Quantity)
	suite.InDelta(seeded.Weight(), row.Weight, 0.001)
	suite.Equal(seeded.Details().PickupLocation, row.PickupLocation)
}

func (suite *GetAvailableDonationsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAvailableDonationsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAvailableDonationsQuery constructor")
}

// seedDonation restores a donation with the given status and persists it.
func (suite *GetAvailableDonationsQueryHandlerTestSuite) seedDonation(
	status donation.Status, expiresIn time.Duration,
) *donation.Donation {
	var volunteerID *kernel.UUID
	var pickupTime, completionTime *time.Time

	now := time.Now().UTC()
	switch status {
	case donation.Assigned:
		vID := kernel.NewUUID()
		volunteerID = &vID
	case donation.Completed:
		vID := kernel.NewUUID()
		volunteerID = &vID
		pickedUp := now.Add(-time.Hour)
		completed := now.Add(-30 * time.Minute)
		pickupTime = &pickedUp
		completionTime = &completed
	}

	seeded, err := donation.RestoreDonation(
		kernel.NewUUID(),
		kernel.NewUUID(),
		volunteerID,
		"Pasta trays",
		6,
		3.5,
		now.Add(expiresIn),
		donation.Details{PickupLocation: "Loading dock"},
		status,
		pickupTime,
		completionTime,
		1,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.donationRepo.Add(context.Background(), seeded))
	return seeded
}

func TestGetAvailableDonationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableDonationsQueryHandlerTestSuite))
}
