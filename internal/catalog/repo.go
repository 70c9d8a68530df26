package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/internal/repo"
	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
)

// Repository exposes medication catalog persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(conn)}
}

// List returns the full catalog.
func (r *Repository) List(ctx context.Context) ([]models.Medication, error) {
	var rows []models.Medication
	if err := r.DB(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a medication by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Medication, error) {
	var medication models.Medication
	if err := r.DB(ctx).First(&medication, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &medication, nil
}

// Create inserts a new medication and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateMedicationDTO) (*models.Medication, error) {
	medication := dto.ToModel()
	if medication.ID == "" {
		medication.ID = uuid.NewString()
	}
	if err := r.DB(ctx).Create(medication).Error; err != nil {
		return nil, err
	}
	return medication, nil
}
