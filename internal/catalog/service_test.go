package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
)

type stubCatalogRepo struct {
	rows       []models.Medication
	medication *models.Medication
	err        error
	listCalls  int
}

func (s *stubCatalogRepo) List(_ context.Context) ([]models.Medication, error) {
	s.listCalls++
	return s.rows, s.err
}

func (s *stubCatalogRepo) FindByID(_ context.Context, _ string) (*models.Medication, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.medication, nil
}

func (s *stubCatalogRepo) Create(_ context.Context, dto CreateMedicationDTO) (*models.Medication, error) {
	if s.err != nil {
		return nil, s.err
	}
	m := dto.ToModel()
	m.ID = "med-1"
	return m, nil
}

type stubCache struct {
	entries map[string]string
	deleted []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string]string{}}
}

func (s *stubCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.entries[key]; ok {
		return v, nil
	}
	return "", errors.New("cache miss")
}

func (s *stubCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	s.entries[key] = value.(string)
	return nil
}

func (s *stubCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(s.entries, k)
		s.deleted = append(s.deleted, k)
	}
	return nil
}

func (s *stubCache) CacheKey(parts ...string) string {
	return "bok:cache:" + strings.Join(parts, ":")
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil, nil); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestServiceCreateRejectsPrescription(t *testing.T) {
	svc, _ := NewService(&stubCatalogRepo{}, nil)

	_, gotErr := svc.Create(context.Background(), CreateMedicationDTO{
		Name:                 "Amoxicillin 250mg",
		Strength:             "250mg",
		Manufacturer:         "GSK Nigeria",
		RequiresPrescription: true,
		IsOTC:                false,
	})
	typed := pkgerrors.As(gotErr)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", gotErr)
	}
	if typed.Message() != OTCOnlyMessage {
		t.Fatalf("unexpected message %q", typed.Message())
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["isOTC"] != OTCOnlyMessage {
		t.Fatalf("expected isOTC detail, got %v", typed.Details())
	}
}

func TestServiceCreateOTC(t *testing.T) {
	repo := &stubCatalogRepo{}
	cache := newStubCache()
	svc, _ := NewService(repo, cache)

	// Warm the cache, then prove creation invalidates it.
	cache.entries[cache.CacheKey("medications", "list")] = "[]"

	dto, err := svc.Create(context.Background(), CreateMedicationDTO{
		Name:         "Paracetamol 500mg",
		Strength:     "500mg",
		Manufacturer: "Emzor",
		IsOTC:        true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.ID != "med-1" || !dto.IsOTC {
		t.Fatalf("unexpected dto %+v", dto)
	}
	if len(cache.deleted) == 0 {
		t.Fatal("expected list cache invalidation on create")
	}
}

func TestServiceCreateRequiresFields(t *testing.T) {
	svc, _ := NewService(&stubCatalogRepo{}, nil)

	_, gotErr := svc.Create(context.Background(), CreateMedicationDTO{IsOTC: true})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", gotErr)
	}
}

func TestServiceListUsesCache(t *testing.T) {
	repo := &stubCatalogRepo{rows: []models.Medication{{ID: "med-1", Name: "Aspirin 75mg", Strength: "75mg", Manufacturer: "CardioHealth", IsOTC: true}}}
	cache := newStubCache()
	svc, _ := NewService(repo, cache)
	ctx := context.Background()

	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 row, got %d", len(first))
	}

	second, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list (cached): %v", err)
	}
	if len(second) != 1 || second[0].ID != "med-1" {
		t.Fatalf("cached result mismatch: %+v", second)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected a single repo hit, got %d", repo.listCalls)
	}
}

func TestServiceGetByIDNotFound(t *testing.T) {
	svc, _ := NewService(&stubCatalogRepo{err: gorm.ErrRecordNotFound}, nil)

	_, gotErr := svc.GetByID(context.Background(), "missing")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", gotErr)
	}
}
