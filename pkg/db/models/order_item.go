package models

import "github.com/shopspring/decimal"

// OrderItem is a single medication line on an order.
type OrderItem struct {
	ID           string          `gorm:"column:id;type:varchar;primaryKey"`
	OrderID      string          `gorm:"column:order_id;type:varchar;not null;index"`
	MedicationID string          `gorm:"column:medication_id;type:varchar;not null"`
	Quantity     int             `gorm:"column:quantity;not null"`
	UnitPrice    decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	Subtotal     decimal.Decimal `gorm:"column:subtotal;type:numeric(10,2);not null"`
}
