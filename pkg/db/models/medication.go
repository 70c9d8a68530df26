package models

// Medication is a catalog entry. Marketplace policy only allows
// over-the-counter products, enforced at the service layer on create.
type Medication struct {
	ID                   string  `gorm:"column:id;type:varchar;primaryKey"`
	Name                 string  `gorm:"column:name;type:text;not null"`
	Strength             string  `gorm:"column:strength;type:text;not null"`
	Manufacturer         string  `gorm:"column:manufacturer;type:text;not null"`
	Category             *string `gorm:"column:category;type:text"`
	Description          *string `gorm:"column:description;type:text"`
	FormFactor           *string `gorm:"column:form_factor;type:text"`
	RequiresPrescription bool    `gorm:"column:requires_prescription;not null;default:false"`
	IsOTC                bool    `gorm:"column:is_otc;not null;default:true"`
}
