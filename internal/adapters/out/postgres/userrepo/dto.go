// Package userrepo persists user account aggregates. Usernames are unique
// at the database level; Add maps the violation to a ConflictError.
package userrepo

import (
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the database row for a user account.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"uniqueIndex"`
	Email    string
	Password string
	Role     string `gorm:"type:text"`

	FirstName   string
	LastName    string
	PhoneNumber string
	IsActive    bool

	Version int
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:          aggregate.ID().Bytes(),
		Username:    aggregate.Username(),
		Email:       aggregate.Email(),
		Password:    aggregate.Password(),
		Role:        aggregate.Role().String(),
		FirstName:   aggregate.FirstName(),
		LastName:    aggregate.LastName(),
		PhoneNumber: aggregate.PhoneNumber(),
		IsActive:    aggregate.IsActive(),
		Version:     aggregate.Version(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Username,
		dto.Email,
		dto.Password,
		user.Role(dto.Role),
		dto.FirstName,
		dto.LastName,
		dto.PhoneNumber,
		dto.IsActive,
		dto.Version,
	)
}
