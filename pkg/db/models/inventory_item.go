package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a pharmacy's stocked listing of a catalog medication.
// The (pharmacy_id, medication_id) pair is deliberately not unique: repeat
// listings represent separate batches.
type InventoryItem struct {
	ID            string           `gorm:"column:id;type:varchar;primaryKey"`
	PharmacyID    string           `gorm:"column:pharmacy_id;type:varchar;not null;index"`
	Pharmacy      *Pharmacy        `gorm:"foreignKey:PharmacyID"`
	MedicationID  string           `gorm:"column:medication_id;type:varchar;not null;index"`
	Medication    *Medication      `gorm:"foreignKey:MedicationID"`
	Quantity      int              `gorm:"column:quantity;not null;default:0"`
	Price         decimal.Decimal  `gorm:"column:price;type:numeric(10,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"column:original_price;type:numeric(10,2)"`
	InStock       bool             `gorm:"column:in_stock;not null;default:true"`
	ExpiryDate    *time.Time       `gorm:"column:expiry_date"`
	BatchNumber   *string          `gorm:"column:batch_number;type:text"`
	LastUpdated   time.Time        `gorm:"column:last_updated;autoUpdateTime"`
}

// TableName keeps the historical table name.
func (InventoryItem) TableName() string {
	return "inventory"
}
