package models

import (
	"time"

	"github.com/bokpharm/bokpharm-backend/pkg/enums"
)

// User represents the canonical identity entity. IDs come from the external
// identity provider, so the column is a plain varchar rather than a uuid.
type User struct {
	ID              string         `gorm:"column:id;type:varchar;primaryKey"`
	Email           *string        `gorm:"column:email;type:varchar;uniqueIndex"`
	FirstName       *string        `gorm:"column:first_name;type:varchar"`
	LastName        *string        `gorm:"column:last_name;type:varchar"`
	ProfileImageURL *string        `gorm:"column:profile_image_url;type:varchar"`
	Role            enums.UserRole `gorm:"column:role;type:text;not null;default:'customer'"`
	PharmacyID      *string        `gorm:"column:pharmacy_id;type:varchar"`
	Pharmacy        *Pharmacy      `gorm:"foreignKey:PharmacyID"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
