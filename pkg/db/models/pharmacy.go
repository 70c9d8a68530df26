package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bokpharm/bokpharm-backend/pkg/enums"
)

// Pharmacy represents a storefront on the marketplace. IsDefault is a
// nullable marker with a unique index: at most one row carries true, and
// every other row stays NULL so the index never collides.
type Pharmacy struct {
	ID               string                 `gorm:"column:id;type:varchar;primaryKey"`
	Name             string                 `gorm:"column:name;type:text;not null"`
	Address          string                 `gorm:"column:address;type:text;not null"`
	Phone            string                 `gorm:"column:phone;type:text;not null"`
	Hours            string                 `gorm:"column:hours;type:text;not null;default:'24/7'"`
	Rating           *decimal.Decimal       `gorm:"column:rating;type:numeric(2,1);default:4.5"`
	IsOpen24Hours    bool                   `gorm:"column:is_open_24_hours;not null;default:true"`
	DeliveryTime     *string                `gorm:"column:delivery_time;type:text;default:'15-20 min'"`
	Distance         *string                `gorm:"column:distance;type:text"`
	Latitude         *decimal.Decimal       `gorm:"column:latitude;type:numeric(10,8)"`
	Longitude        *decimal.Decimal       `gorm:"column:longitude;type:numeric(11,8)"`
	DeliveryFee      *decimal.Decimal       `gorm:"column:delivery_fee;type:numeric(10,2);default:0"`
	OnboardingStatus enums.OnboardingStatus `gorm:"column:onboarding_status;type:text;not null;default:'pending'"`
	IsDefault        *bool                  `gorm:"column:is_default;uniqueIndex"`
	CreatedAt        time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
