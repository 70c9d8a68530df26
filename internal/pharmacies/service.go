package pharmacies

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
	"github.com/bokpharm/bokpharm-backend/pkg/enums"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
)

type pharmacyRepository interface {
	List(ctx context.Context) ([]models.Pharmacy, error)
	ListByOnboardingStatus(ctx context.Context, status enums.OnboardingStatus) ([]models.Pharmacy, error)
	FindByID(ctx context.Context, id string) (*models.Pharmacy, error)
	Create(ctx context.Context, dto CreatePharmacyDTO) (*models.Pharmacy, error)
	EnsureDefault(ctx context.Context, dto CreatePharmacyDTO) (*models.Pharmacy, error)
}

// Service exposes pharmacy operations.
type Service interface {
	List(ctx context.Context) ([]PharmacyDTO, error)
	ListByOnboardingStatus(ctx context.Context, status enums.OnboardingStatus) ([]PharmacyDTO, error)
	GetByID(ctx context.Context, id string) (*PharmacyDTO, error)
	Create(ctx context.Context, input CreatePharmacyDTO) (*PharmacyDTO, error)
	EnsureDefault(ctx context.Context) (*PharmacyDTO, error)
}

type service struct {
	repo pharmacyRepository
}

// NewService builds a pharmacies service with the provided repository.
func NewService(repo pharmacyRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("pharmacies repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]PharmacyDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list pharmacies")
	}
	return FromModels(rows), nil
}

func (s *service) ListByOnboardingStatus(ctx context.Context, status enums.OnboardingStatus) ([]PharmacyDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid onboarding status")
	}
	rows, err := s.repo.ListByOnboardingStatus(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list pharmacies by status")
	}
	return FromModels(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*PharmacyDTO, error) {
	pharmacy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pharmacy not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load pharmacy")
	}
	return FromModel(pharmacy), nil
}

func (s *service) Create(ctx context.Context, input CreatePharmacyDTO) (*PharmacyDTO, error) {
	if input.OnboardingStatus != nil && !input.OnboardingStatus.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid onboarding status")
	}
	pharmacy, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create pharmacy")
	}
	return FromModel(pharmacy), nil
}

// EnsureDefault returns the demo pharmacy every fresh environment bootstraps
// with, creating it on first use.
func (s *service) EnsureDefault(ctx context.Context) (*PharmacyDTO, error) {
	pharmacy, err := s.repo.EnsureDefault(ctx, defaultPharmacyFixture())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "ensure default pharmacy")
	}
	return FromModel(pharmacy), nil
}

func defaultPharmacyFixture() CreatePharmacyDTO {
	hours := "24/7"
	open24 := true
	deliveryTime := "15-20 min"
	distance := "0 km"
	zero := decimal.Zero
	fee := decimal.NewFromFloat(5.00)
	rating := decimal.NewFromFloat(4.9)
	active := enums.OnboardingStatusActive

	return CreatePharmacyDTO{
		Name:             "BoK Pharm - Demo Pharmacy",
		Address:          "123 Ocean View Drive, Coastal City",
		Phone:            "+1-555-BOKPHARM",
		Hours:            &hours,
		Rating:           &rating,
		IsOpen24Hours:    &open24,
		DeliveryTime:     &deliveryTime,
		Distance:         &distance,
		Latitude:         &zero,
		Longitude:        &zero,
		DeliveryFee:      &fee,
		OnboardingStatus: &active,
	}
}
