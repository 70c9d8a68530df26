package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
	"github.com/bokpharm/bokpharm-backend/pkg/redis"
)

// OTCOnlyMessage is returned whenever a prescription product is submitted to
// the catalog. Marketplace policy only admits over-the-counter medications.
const OTCOnlyMessage = "Only over-the-counter (OTC) medications are allowed. Prescription medications cannot be added."

const listCacheTTL = 60 * time.Second

type catalogRepository interface {
	List(ctx context.Context) ([]models.Medication, error)
	FindByID(ctx context.Context, id string) (*models.Medication, error)
	Create(ctx context.Context, dto CreateMedicationDTO) (*models.Medication, error)
}

// Service exposes medication catalog operations.
type Service interface {
	List(ctx context.Context) ([]MedicationDTO, error)
	GetByID(ctx context.Context, id string) (*MedicationDTO, error)
	Create(ctx context.Context, input CreateMedicationDTO) (*MedicationDTO, error)
}

type service struct {
	repo  catalogRepository
	cache redis.Cache
}

// NewService builds a catalog service. The cache is optional; a nil cache
// means every list goes to the database.
func NewService(repo catalogRepository, cache redis.Cache) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, cache: cache}, nil
}

func (s *service) List(ctx context.Context) ([]MedicationDTO, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, s.listCacheKey()); err == nil && cached != "" {
			var out []MedicationDTO
			if jsonErr := json.Unmarshal([]byte(cached), &out); jsonErr == nil {
				return out, nil
			}
		}
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list medications")
	}
	out := FromModels(rows)

	if s.cache != nil {
		if payload, jsonErr := json.Marshal(out); jsonErr == nil {
			// Cache write failures are not worth failing the read.
			_ = s.cache.Set(ctx, s.listCacheKey(), string(payload), listCacheTTL)
		}
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*MedicationDTO, error) {
	medication, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "medication not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load medication")
	}
	return FromModel(medication), nil
}

func (s *service) Create(ctx context.Context, input CreateMedicationDTO) (*MedicationDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if strings.TrimSpace(input.Strength) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "strength is required")
	}
	if strings.TrimSpace(input.Manufacturer) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "manufacturer is required")
	}
	if !input.IsOTC {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, OTCOnlyMessage).
			WithDetails(map[string]string{"isOTC": OTCOnlyMessage})
	}

	medication, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create medication")
	}

	if s.cache != nil {
		_ = s.cache.Del(ctx, s.listCacheKey())
	}
	return FromModel(medication), nil
}

func (s *service) listCacheKey() string {
	return s.cache.CacheKey("medications", "list")
}
