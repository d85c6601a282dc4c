package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"foodbridge/cmd"
	httpadapter "foodbridge/internal/adapters/in/http"
	"foodbridge/internal/adapters/out/postgres"
	"foodbridge/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreateExpireDonationsCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = httpadapter.NewCustomValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.Handlers{
		PostDonation:       app.CreatePostDonationCommandHandler(),
		UpdateDonation:     app.CreateUpdateDonationCommandHandler(),
		DeleteDonation:     app.CreateDeleteDonationCommandHandler(),
		RequestPickup:      app.CreateRequestPickupCommandHandler(),
		AcceptPickup:       app.CreateAcceptPickupCommandHandler(),
		StartPickup:        app.CreateStartPickupCommandHandler(),
		CompletePickup:     app.CreateCompletePickupCommandHandler(),
		CancelPickup:       app.CreateCancelPickupCommandHandler(),
		RegisterRestaurant: app.CreateRegisterRestaurantCommandHandler(),
		RegisterVolunteer:  app.CreateRegisterVolunteerCommandHandler(),
		UpdateVolunteer:    app.CreateUpdateVolunteerCommandHandler(),
		DeleteRestaurant:   app.CreateDeleteRestaurantCommandHandler(),
		DeleteVolunteer:    app.CreateDeleteVolunteerCommandHandler(),
		DeleteUser:         app.CreateDeleteUserCommandHandler(),
		AddLocation:        app.CreateAddLocationCommandHandler(),

		GetAvailableDonations: app.CreateGetAvailableDonationsQueryHandler(),
		GetDonation:           app.CreateGetDonationQueryHandler(),
		GetActiveRequests:     app.CreateGetActiveRequestsQueryHandler(),
		GetLocations:          app.CreateGetLocationsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
