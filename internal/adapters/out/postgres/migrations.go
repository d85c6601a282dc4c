package postgres

import (
	"foodbridge/internal/adapters/out/postgres/donationrepo"
	"foodbridge/internal/adapters/out/postgres/locationrepo"
	"foodbridge/internal/adapters/out/postgres/pickuprepo"
	"foodbridge/internal/adapters/out/postgres/restaurantrepo"
	"foodbridge/internal/adapters/out/postgres/userrepo"
	"foodbridge/internal/adapters/out/postgres/volunteerrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate and
// installs the partial unique index that allows at most one non-terminal
// pickup request per donation.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&restaurantrepo.RestaurantDTO{},
		&volunteerrepo.VolunteerDTO{},
		&donationrepo.DonationDTO{},
		&pickuprepo.RequestDTO{},
		&locationrepo.LocationDTO{},
	); err != nil {
		return err
	}

	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS ux_pickup_requests_active
		ON pickup_requests (donation_id)
		WHERE status NOT IN ('Completed', 'Cancelled')
	`).Error
}
