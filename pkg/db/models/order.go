package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bokpharm/bokpharm-backend/pkg/enums"
)

// Order is a customer's delivery request against a single pharmacy.
type Order struct {
	ID              string            `gorm:"column:id;type:varchar;primaryKey"`
	UserID          string            `gorm:"column:user_id;type:varchar;not null;index"`
	PharmacyID      string            `gorm:"column:pharmacy_id;type:varchar;not null;index"`
	Status          enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	Total           decimal.Decimal   `gorm:"column:total;type:numeric(10,2);not null"`
	DeliveryAddress string            `gorm:"column:delivery_address;type:text;not null"`
	PaymentMethod   *string           `gorm:"column:payment_method;type:text"`
	Items           []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
}
