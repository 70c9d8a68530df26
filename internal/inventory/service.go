package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
)

type inventoryRepository interface {
	ListByPharmacy(ctx context.Context, pharmacyID string) ([]models.InventoryItem, error)
	FindByID(ctx context.Context, id string) (*models.InventoryItem, error)
	Create(ctx context.Context, pharmacyID string, dto CreateItemDTO) (*models.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type medicationFinder interface {
	FindByID(ctx context.Context, id string) (*models.Medication, error)
}

// Service exposes inventory operations scoped to a pharmacy.
type Service interface {
	List(ctx context.Context, pharmacyID string) ([]InventoryItemDTO, error)
	Create(ctx context.Context, pharmacyID string, input CreateItemDTO) (*InventoryItemDTO, error)
	Delete(ctx context.Context, pharmacyID, itemID string) error
}

type service struct {
	repo        inventoryRepository
	medications medicationFinder
}

// NewService builds an inventory service with the provided repositories.
func NewService(repo inventoryRepository, medications medicationFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if medications == nil {
		return nil, fmt.Errorf("medications repository required")
	}
	return &service{repo: repo, medications: medications}, nil
}

func (s *service) List(ctx context.Context, pharmacyID string) ([]InventoryItemDTO, error) {
	rows, err := s.repo.ListByPharmacy(ctx, pharmacyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list inventory")
	}
	return FromModels(rows), nil
}

func (s *service) Create(ctx context.Context, pharmacyID string, input CreateItemDTO) (*InventoryItemDTO, error) {
	if strings.TrimSpace(input.MedicationID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "medicationId is required")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	if _, err := s.medications.FindByID(ctx, input.MedicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown medication").
				WithDetails(map[string]string{"medicationId": "medication does not exist"})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load medication")
	}

	item, err := s.repo.Create(ctx, pharmacyID, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create inventory item")
	}
	return FromModel(item), nil
}

// Delete removes an item if it belongs to the caller's pharmacy. Items owned
// by other pharmacies read as missing so listings are never enumerable
// across tenants.
func (s *service) Delete(ctx context.Context, pharmacyID, itemID string) error {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Inventory item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load inventory item")
	}
	if item.PharmacyID != pharmacyID {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Inventory item not found")
	}
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete inventory item")
	}
	return nil
}
