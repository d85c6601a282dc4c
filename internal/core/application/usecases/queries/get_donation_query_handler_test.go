package queries_test

import (
	"context"
	"testing"
	"time"

	"foodbridge/internal/adapters/out/postgres/donationrepo"
	"foodbridge/internal/adapters/out/postgres/restaurantrepo"
	"foodbridge/internal/adapters/out/postgres/volunteerrepo"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/restaurant"
	"foodbridge/internal/core/domain/model/volunteer"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDonationQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	handler        queries.GetDonationQueryHandler
	donationRepo   *donationrepo.GormDonationRepository
	restaurantRepo *restaurantrepo.GormRestaurantRepository
	volunteerRepo  *volunteerrepo.GormVolunteerRepository
}

func (suite *GetDonationQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&donationrepo.DonationDTO{},
		&restaurantrepo.RestaurantDTO{},
		&volunteerrepo.VolunteerDTO{},
	))

	tracker := &mockAggregateTracker{}
	suite.handler = queries.NewGetDonationQueryHandler(db)
	suite.donationRepo = donationrepo.NewGormDonationRepository(db, tracker)
	suite.restaurantRepo = restaurantrepo.NewGormRestaurantRepository(db, tracker)
	suite.volunteerRepo = volunteerrepo.NewGormVolunteerRepository(db, tracker)
}

func (suite *GetDonationQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE food_donations, restaurants, volunteers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetDonationQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDonationQueryHandlerTestSuite) TestHandle_JoinsRestaurantAndVolunteerNames() {
	ctx := context.Background()

	donor := suite.seedRestaurant("Trattoria Nonna")
	carrier := suite.seedVolunteer("Lee Ortega")

	now := time.Now().UTC()
	pickedUp := now.Add(-time.Hour)
	carrierID := carrier.ID()
	seeded, err := donation.RestoreDonation(
		kernel.NewUUID(),
		donor.ID(),
		&carrierID,
		"Lasagna trays",
		4,
		9.0,
		now.Add(6*time.Hour),
		donation.Details{PickupLocation: "Back entrance"},
		donation.PickedUp,
		&pickedUp,
		nil,
		1,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.donationRepo.Add(ctx, seeded))

	query, err := queries.NewGetDonationQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(seeded.ID(), result.ID)
	suite.Equal(donor.ID(), result.RestaurantID)
	suite.Equal("Trattoria Nonna", result.RestaurantName)
	suite.Require().NotNil(result.VolunteerID)
	suite.True(result.VolunteerID.IsEqual(carrier.ID()))
	suite.Require().NotNil(result.VolunteerName)
	suite.Equal("Lee Ortega", *result.VolunteerName)
	suite.Equal(donation.PickedUp.String(), result.Status)
	suite.Require().NotNil(result.PickupTime)
}

func (suite *GetDonationQueryHandlerTestSuite) TestHandle_UnassignedDonation_NoVolunteerName() {
	ctx := context.Background()

	donor := suite.seedRestaurant("Bakery on 5th")
	seeded, err := donation.NewDonation(
		kernel.NewUUID(), donor.ID(), "Day-old bread", 20, 4.5,
		time.Now().UTC().Add(12*time.Hour), donation.Details{}, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.donationRepo.Add(ctx, seeded))

	query, err := queries.NewGetDonationQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("Bakery on 5th", result.RestaurantName)
	suite.Nil(result.VolunteerID)
	suite.Nil(result.VolunteerName)
}

func (suite *GetDonationQueryHandlerTestSuite) TestHandle_MissingDonation_ReturnsNotFound() {
	query, err := queries.NewGetDonationQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetDonationQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDonationQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetDonationQuery constructor")
}

func (suite *GetDonationQueryHandlerTestSuite) seedRestaurant(name string) *restaurant.Restaurant {
	seeded, err := restaurant.NewRestaurant(
		kernel.NewUUID(), name, "12 Market St", "555-0170", "Dana Cook", "Italian")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurantRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *GetDonationQueryHandlerTestSuite) seedVolunteer(name string) *volunteer.Volunteer {
	seeded, err := volunteer.NewVolunteer(
		kernel.NewUUID(), name, "Car", "5PLT902", "Evenings")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.volunteerRepo.Add(context.Background(), seeded))
	return seeded
}

func TestGetDonationQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDonationQueryHandlerTestSuite))
}
