package seed

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/internal/catalog"
	"github.com/bokpharm/bokpharm-backend/internal/pharmacies"
	"github.com/bokpharm/bokpharm-backend/pkg/enums"
	"github.com/bokpharm/bokpharm-backend/pkg/logger"
)

// Run loads the demo catalog and pharmacies when the store is empty.
// Prescription items go directly through the repo on purpose: the catalog
// service only blocks NEW prescription entries, existing ones stay browsable.
func Run(ctx context.Context, conn *gorm.DB, logg *logger.Logger) error {
	catalogRepo := catalog.NewRepository(conn)
	pharmacyRepo := pharmacies.NewRepository(conn)

	existing, err := catalogRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		if logg != nil {
			logg.Info(logg.WithField(ctx, "medications", len(existing)), "catalog already seeded, skipping")
		}
		return nil
	}

	for _, med := range DemoMedications() {
		if _, err := catalogRepo.Create(ctx, med); err != nil {
			return err
		}
	}

	for _, pharmacy := range DemoPharmacies() {
		if _, err := pharmacyRepo.Create(ctx, pharmacy); err != nil {
			return err
		}
	}

	if logg != nil {
		logg.Info(ctx, "seed complete")
	}
	return nil
}

func str(s string) *string { return &s }

func dec(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// DemoMedications returns the development catalog fixtures.
func DemoMedications() []catalog.CreateMedicationDTO {
	return []catalog.CreateMedicationDTO{
		{Name: "Paracetamol", Strength: "500mg", Manufacturer: "Emzor", Category: str("Pain Relief"), FormFactor: str("tablet"), IsOTC: true},
		{Name: "Ibuprofen", Strength: "400mg", Manufacturer: "May & Baker", Category: str("Pain Relief"), FormFactor: str("tablet"), IsOTC: true},
		{Name: "Amoxicillin", Strength: "250mg", Manufacturer: "GSK Nigeria", Category: str("Antibiotics"), FormFactor: str("capsule"), RequiresPrescription: true},
		{Name: "Vitamin C", Strength: "1000mg", Manufacturer: "HealthGuard", Category: str("Vitamins"), FormFactor: str("tablet"), IsOTC: true},
		{Name: "Cetirizine", Strength: "10mg", Manufacturer: "Pharma Plus", Category: str("Allergy"), FormFactor: str("tablet"), IsOTC: true},
		{Name: "Omeprazole", Strength: "20mg", Manufacturer: "MedCare", Category: str("Digestive"), FormFactor: str("capsule"), IsOTC: true},
		{Name: "Metformin", Strength: "500mg", Manufacturer: "Diabetes Solutions", Category: str("Diabetes"), FormFactor: str("tablet"), RequiresPrescription: true},
		{Name: "Aspirin", Strength: "75mg", Manufacturer: "CardioHealth", Category: str("Cardiovascular"), FormFactor: str("tablet"), IsOTC: true},
	}
}

// DemoPharmacies returns the development pharmacy fixtures.
func DemoPharmacies() []pharmacies.CreatePharmacyDTO {
	active := enums.OnboardingStatusActive
	return []pharmacies.CreatePharmacyDTO{
		{
			Name:             "Ocean View Pharmacy",
			Address:          "45 Marina Road, Coastal City",
			Phone:            "+1-555-0145",
			Rating:           dec(4.7),
			DeliveryTime:     str("20-30 min"),
			Distance:         str("1.2 km"),
			DeliveryFee:      dec(3.50),
			OnboardingStatus: &active,
		},
		{
			Name:             "HealthPlus Pharmacy",
			Address:          "78 Central Avenue, Coastal City",
			Phone:            "+1-555-0178",
			Rating:           dec(4.3),
			DeliveryTime:     str("25-35 min"),
			Distance:         str("2.8 km"),
			DeliveryFee:      dec(4.00),
			OnboardingStatus: &active,
		},
	}
}
