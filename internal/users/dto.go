package users

import (
	"time"

	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
	"github.com/bokpharm/bokpharm-backend/pkg/enums"
)

// UserDTO exposes safe user data in API responses.
type UserDTO struct {
	ID              string         `json:"id"`
	Email           *string        `json:"email"`
	FirstName       *string        `json:"firstName"`
	LastName        *string        `json:"lastName"`
	ProfileImageURL *string        `json:"profileImageUrl"`
	Role            enums.UserRole `json:"role"`
	PharmacyID      *string        `json:"pharmacyId"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// UpsertUserDTO holds the identity-provider profile applied on every login.
type UpsertUserDTO struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	Role            *enums.UserRole
}

// FromModel maps the persisted user into a DTO.
func FromModel(m *models.User) *UserDTO {
	if m == nil {
		return nil
	}
	return &UserDTO{
		ID:              m.ID,
		Email:           m.Email,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		ProfileImageURL: m.ProfileImageURL,
		Role:            m.Role,
		PharmacyID:      m.PharmacyID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from the upsert DTO, supplying defaults.
func (u UpsertUserDTO) ToModel() *models.User {
	model := &models.User{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		Role:            enums.UserRoleCustomer,
	}
	if u.Role != nil {
		model.Role = *u.Role
	}
	return model
}
