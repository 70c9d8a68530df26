package pharmacies

import (
	"github.com/shopspring/decimal"

	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
	"github.com/bokpharm/bokpharm-backend/pkg/enums"
)

// PharmacyDTO exposes pharmacy data in API responses. Money and rating
// columns render as fixed-point strings, matching what the web client parses.
type PharmacyDTO struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Address          string                 `json:"address"`
	Phone            string                 `json:"phone"`
	Hours            string                 `json:"hours"`
	Rating           *string                `json:"rating"`
	IsOpen24Hours    bool                   `json:"isOpen24Hours"`
	DeliveryTime     *string                `json:"deliveryTime"`
	Distance         *string                `json:"distance"`
	Latitude         *string                `json:"latitude"`
	Longitude        *string                `json:"longitude"`
	DeliveryFee      *string                `json:"deliveryFee"`
	OnboardingStatus enums.OnboardingStatus `json:"onboardingStatus"`
}

// CreatePharmacyDTO holds creation-time data for a new pharmacy.
type CreatePharmacyDTO struct {
	Name             string
	Address          string
	Phone            string
	Hours            *string
	Rating           *decimal.Decimal
	IsOpen24Hours    *bool
	DeliveryTime     *string
	Distance         *string
	Latitude         *decimal.Decimal
	Longitude        *decimal.Decimal
	DeliveryFee      *decimal.Decimal
	OnboardingStatus *enums.OnboardingStatus
}

// FromModel maps the persisted pharmacy into a DTO.
func FromModel(m *models.Pharmacy) *PharmacyDTO {
	if m == nil {
		return nil
	}
	return &PharmacyDTO{
		ID:               m.ID,
		Name:             m.Name,
		Address:          m.Address,
		Phone:            m.Phone,
		Hours:            m.Hours,
		Rating:           renderFixed(m.Rating, 1),
		IsOpen24Hours:    m.IsOpen24Hours,
		DeliveryTime:     m.DeliveryTime,
		Distance:         m.Distance,
		Latitude:         renderPlain(m.Latitude),
		Longitude:        renderPlain(m.Longitude),
		DeliveryFee:      renderFixed(m.DeliveryFee, 2),
		OnboardingStatus: m.OnboardingStatus,
	}
}

// FromModels maps a slice of pharmacies, never returning nil.
func FromModels(rows []models.Pharmacy) []PharmacyDTO {
	out := make([]PharmacyDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

// ToModel prepares the GORM model from the creation DTO, supplying defaults.
func (c CreatePharmacyDTO) ToModel() *models.Pharmacy {
	model := &models.Pharmacy{
		Name:             c.Name,
		Address:          c.Address,
		Phone:            c.Phone,
		Hours:            "24/7",
		IsOpen24Hours:    true,
		Rating:           c.Rating,
		Distance:         c.Distance,
		Latitude:         c.Latitude,
		Longitude:        c.Longitude,
		DeliveryFee:      c.DeliveryFee,
		OnboardingStatus: enums.OnboardingStatusPending,
	}

	if c.Hours != nil {
		model.Hours = *c.Hours
	}
	if c.IsOpen24Hours != nil {
		model.IsOpen24Hours = *c.IsOpen24Hours
	}
	if c.Rating == nil {
		rating := decimal.NewFromFloat(4.5)
		model.Rating = &rating
	}
	if c.DeliveryTime != nil {
		model.DeliveryTime = c.DeliveryTime
	} else {
		dt := "15-20 min"
		model.DeliveryTime = &dt
	}
	if c.DeliveryFee == nil {
		fee := decimal.Zero
		model.DeliveryFee = &fee
	}
	if c.OnboardingStatus != nil {
		model.OnboardingStatus = *c.OnboardingStatus
	}

	return model
}

func renderFixed(d *decimal.Decimal, places int32) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(places)
	return &s
}

func renderPlain(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
