package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bokpharm/bokpharm-backend/internal/catalog"
	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
)

// InventoryItemDTO exposes a stocked listing in API responses. Prices render
// as fixed two-decimal strings so 12.5 always serializes as "12.50".
type InventoryItemDTO struct {
	ID            string                 `json:"id"`
	PharmacyID    string                 `json:"pharmacyId"`
	MedicationID  string                 `json:"medicationId"`
	Quantity      int                    `json:"quantity"`
	Price         string                 `json:"price"`
	OriginalPrice *string                `json:"originalPrice"`
	InStock       bool                   `json:"inStock"`
	ExpiryDate    *time.Time             `json:"expiryDate"`
	BatchNumber   *string                `json:"batchNumber"`
	LastUpdated   time.Time              `json:"lastUpdated"`
	Medication    *catalog.MedicationDTO `json:"medication,omitempty"`
}

// CreateItemDTO holds creation-time data for a stocked listing.
type CreateItemDTO struct {
	MedicationID  string
	Quantity      int
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	InStock       *bool
	ExpiryDate    *time.Time
	BatchNumber   *string
}

// FromModel maps the persisted item into a DTO.
func FromModel(m *models.InventoryItem) *InventoryItemDTO {
	if m == nil {
		return nil
	}
	dto := &InventoryItemDTO{
		ID:           m.ID,
		PharmacyID:   m.PharmacyID,
		MedicationID: m.MedicationID,
		Quantity:     m.Quantity,
		Price:        m.Price.StringFixed(2),
		InStock:      m.InStock,
		ExpiryDate:   m.ExpiryDate,
		BatchNumber:  m.BatchNumber,
		LastUpdated:  m.LastUpdated,
		Medication:   catalog.FromModel(m.Medication),
	}
	if m.OriginalPrice != nil {
		s := m.OriginalPrice.StringFixed(2)
		dto.OriginalPrice = &s
	}
	return dto
}

// FromModels maps a slice of items, never returning nil.
func FromModels(rows []models.InventoryItem) []InventoryItemDTO {
	out := make([]InventoryItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

// ToModel prepares the GORM model from the creation DTO, supplying defaults.
func (c CreateItemDTO) ToModel(pharmacyID string) *models.InventoryItem {
	model := &models.InventoryItem{
		PharmacyID:    pharmacyID,
		MedicationID:  c.MedicationID,
		Quantity:      c.Quantity,
		Price:         c.Price,
		OriginalPrice: c.OriginalPrice,
		InStock:       true,
		ExpiryDate:    c.ExpiryDate,
		BatchNumber:   c.BatchNumber,
	}
	if c.InStock != nil {
		model.InStock = *c.InStock
	}
	return model
}
