package pharmacies

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/internal/repo"
	"github.com/bokpharm/bokpharm-backend/pkg/db"
	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
	"github.com/bokpharm/bokpharm-backend/pkg/enums"
)

// Repository exposes pharmacy persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a pharmacies repo bound to the provided GORM DB.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(conn)}
}

// List returns every pharmacy.
func (r *Repository) List(ctx context.Context) ([]models.Pharmacy, error) {
	var rows []models.Pharmacy
	if err := r.DB(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByOnboardingStatus returns pharmacies filtered by pipeline state.
func (r *Repository) ListByOnboardingStatus(ctx context.Context, status enums.OnboardingStatus) ([]models.Pharmacy, error) {
	var rows []models.Pharmacy
	if err := r.DB(ctx).
		Where("onboarding_status = ?", status).
		Order("name").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a pharmacy by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Pharmacy, error) {
	var pharmacy models.Pharmacy
	if err := r.DB(ctx).First(&pharmacy, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pharmacy, nil
}

// Create inserts a new pharmacy and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreatePharmacyDTO) (*models.Pharmacy, error) {
	pharmacy := dto.ToModel()
	if pharmacy.ID == "" {
		pharmacy.ID = uuid.NewString()
	}
	if err := r.DB(ctx).Create(pharmacy).Error; err != nil {
		return nil, err
	}
	return pharmacy, nil
}

// FindDefault returns the pharmacy carrying the default marker, if any.
func (r *Repository) FindDefault(ctx context.Context) (*models.Pharmacy, error) {
	var pharmacy models.Pharmacy
	err := r.DB(ctx).First(&pharmacy, "is_default = ?", true).Error
	if err != nil {
		return nil, err
	}
	return &pharmacy, nil
}

// EnsureDefault returns the default pharmacy, creating it when absent. The
// unique index on is_default arbitrates concurrent bootstrap attempts: the
// loser of the insert race re-reads the winner's row.
func (r *Repository) EnsureDefault(ctx context.Context, dto CreatePharmacyDTO) (*models.Pharmacy, error) {
	existing, err := r.FindDefault(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pharmacy := dto.ToModel()
	pharmacy.ID = uuid.NewString()
	isDefault := true
	pharmacy.IsDefault = &isDefault

	createErr := r.Tx(ctx, func(tx *gorm.DB) error {
		return tx.Create(pharmacy).Error
	})
	if createErr == nil {
		return pharmacy, nil
	}
	if db.IsUniqueViolation(createErr, "") {
		return r.FindDefault(ctx)
	}
	return nil, createErr
}
