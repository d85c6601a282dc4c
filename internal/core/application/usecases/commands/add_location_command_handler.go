package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/location"
)

// AddLocationCommandHandler registers a new reference location.
type AddLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewAddLocationCommandHandler creates a handler for adding locations.
func NewAddLocationCommandHandler(uowFactory LocationUoWFactory) AddLocationCommandHandler {
	return AddLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the location aggregate and persists it.
func (h AddLocationCommandHandler) Handle(ctx context.Context, command AddLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newLocation, err := location.NewLocation(
		command.LocationID(),
		command.Name(),
		command.Address(),
		command.Latitude(),
		command.Longitude(),
		command.LocationType(),
		command.ContactPerson(),
		command.PhoneNumber(),
		command.Hours(),
	)
	if err != nil {
		return err
	}

	if err = uow.LocationRepository().Add(ctx, newLocation); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
