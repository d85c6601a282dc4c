package cmd

import (
	"foodbridge/internal/adapters/out/postgres"
	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePostDonationCommandHandler() commands.PostDonationCommandHandler {
	return commands.NewPostDonationCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDonationCommandHandler() commands.UpdateDonationCommandHandler {
	return commands.NewUpdateDonationCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDonationCommandHandler() commands.DeleteDonationCommandHandler {
	return commands.NewDeleteDonationCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRequestPickupCommandHandler() commands.RequestPickupCommandHandler {
	return commands.NewRequestPickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateAcceptPickupCommandHandler() commands.AcceptPickupCommandHandler {
	return commands.NewAcceptPickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateStartPickupCommandHandler() commands.StartPickupCommandHandler {
	return commands.NewStartPickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateCompletePickupCommandHandler() commands.CompletePickupCommandHandler {
	return commands.NewCompletePickupCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCancelPickupCommandHandler() commands.CancelPickupCommandHandler {
	return commands.NewCancelPickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateExpireDonationsCommandHandler() commands.ExpireDonationsCommandHandler {
	return commands.NewExpireDonationsCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateRegisterRestaurantCommandHandler() commands.RegisterRestaurantCommandHandler {
	return commands.NewRegisterRestaurantCommandHandler(c.registrationUoWFactory())
}

func (c *CompositionRoot) CreateRegisterVolunteerCommandHandler() commands.RegisterVolunteerCommandHandler {
	return commands.NewRegisterVolunteerCommandHandler(c.registrationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateVolunteerCommandHandler() commands.UpdateVolunteerCommandHandler {
	return commands.NewUpdateVolunteerCommandHandler(c.registrationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	return commands.NewDeleteRestaurantCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDeleteVolunteerCommandHandler() commands.DeleteVolunteerCommandHandler {
	return commands.NewDeleteVolunteerCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAddLocationCommandHandler() commands.AddLocationCommandHandler {
	return commands.NewAddLocationCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateGetAvailableDonationsQueryHandler() queries.GetAvailableDonationsQueryHandler {
	return queries.NewGetAvailableDonationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDonationQueryHandler() queries.GetDonationQueryHandler {
	return queries.NewGetDonationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveRequestsQueryHandler() queries.GetActiveRequestsQueryHandler {
	return queries.NewGetActiveRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLocationsQueryHandler() queries.GetLocationsQueryHandler {
	return queries.NewGetLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) donationUoWFactory() commands.DonationUoWFactory {
	return FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pickupUoWFactory() commands.PickupUoWFactory {
	return FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) registrationUoWFactory() commands.RegistrationUoWFactory {
	return FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) locationUoWFactory() commands.LocationUoWFactory {
	return FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncDonationUoWFactory func() commands.DonationUoW

func (f FuncDonationUoWFactory) Create() commands.DonationUoW {
	return f()
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
