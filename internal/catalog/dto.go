package catalog

import "github.com/bokpharm/bokpharm-backend/pkg/db/models"

// MedicationDTO exposes catalog entries in API responses.
type MedicationDTO struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Strength             string  `json:"strength"`
	Manufacturer         string  `json:"manufacturer"`
	Category             *string `json:"category"`
	Description          *string `json:"description"`
	FormFactor           *string `json:"formFactor"`
	RequiresPrescription bool    `json:"requiresPrescription"`
	IsOTC                bool    `json:"isOTC"`
}

// CreateMedicationDTO holds creation-time data for a catalog entry.
type CreateMedicationDTO struct {
	Name                 string
	Strength             string
	Manufacturer         string
	Category             *string
	Description          *string
	FormFactor           *string
	RequiresPrescription bool
	IsOTC                bool
}

// FromModel maps the persisted medication into a DTO.
func FromModel(m *models.Medication) *MedicationDTO {
	if m == nil {
		return nil
	}
	return &MedicationDTO{
		ID:                   m.ID,
		Name:                 m.Name,
		Strength:             m.Strength,
		Manufacturer:         m.Manufacturer,
		Category:             m.Category,
		Description:          m.Description,
		FormFactor:           m.FormFactor,
		RequiresPrescription: m.RequiresPrescription,
		IsOTC:                m.IsOTC,
	}
}

// FromModels maps a slice of medications, never returning nil.
func FromModels(rows []models.Medication) []MedicationDTO {
	out := make([]MedicationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

// ToModel prepares the GORM model from the creation DTO.
func (c CreateMedicationDTO) ToModel() *models.Medication {
	return &models.Medication{
		Name:                 c.Name,
		Strength:             c.Strength,
		Manufacturer:         c.Manufacturer,
		Category:             c.Category,
		Description:          c.Description,
		FormFactor:           c.FormFactor,
		RequiresPrescription: c.RequiresPrescription,
		IsOTC:                c.IsOTC,
	}
}
