package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/internal/repo"
	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
)

// Repository exposes inventory persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs an inventory repo bound to the provided GORM DB.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(conn)}
}

// ListByPharmacy returns every listing for a pharmacy with its catalog entry.
func (r *Repository) ListByPharmacy(ctx context.Context, pharmacyID string) ([]models.InventoryItem, error) {
	var rows []models.InventoryItem
	if err := r.DB(ctx).
		Preload("Medication").
		Where("pharmacy_id = ?", pharmacyID).
		Order("last_updated DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a listing by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.DB(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new listing and returns the persisted model.
func (r *Repository) Create(ctx context.Context, pharmacyID string, dto CreateItemDTO) (*models.InventoryItem, error) {
	item := dto.ToModel(pharmacyID)
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := r.DB(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a listing by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.DB(ctx).Delete(&models.InventoryItem{}, "id = ?", id).Error
}
