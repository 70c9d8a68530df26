package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bokpharm/bokpharm-backend/internal/catalog"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
)

type stubCatalogService struct {
	items     []catalog.MedicationDTO
	created   *catalog.MedicationDTO
	err       error
	lastInput *catalog.CreateMedicationDTO
}

func (s *stubCatalogService) List(_ context.Context) ([]catalog.MedicationDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *stubCatalogService) GetByID(_ context.Context, _ string) (*catalog.MedicationDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.items) > 0 {
		return &s.items[0], nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Medication not found")
}

func (s *stubCatalogService) Create(_ context.Context, input catalog.CreateMedicationDTO) (*catalog.MedicationDTO, error) {
	s.lastInput = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func TestMedicationList(t *testing.T) {
	logg := testLogger()
	stub := &stubCatalogService{items: []catalog.MedicationDTO{
		{ID: "med-1", Name: "Aspirin"},
		{ID: "med-2", Name: "Ibuprofen"},
	}}

	t.Run("full list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/medications", nil)
		rec := httptest.NewRecorder()
		MedicationList(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var body []catalog.MedicationDTO
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 medications, got %d", len(body))
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/medications?limit=1", nil)
		rec := httptest.NewRecorder()
		MedicationList(stub, logg).ServeHTTP(rec, req)

		var body []catalog.MedicationDTO
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body) != 1 || body[0].ID != "med-1" {
			t.Fatalf("expected first medication only, got %v", body)
		}
	})
}

func TestMedicationCreate(t *testing.T) {
	logg := testLogger()

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/medications", strings.NewReader(`{"name":"Aspirin"}`))
		rec := httptest.NewRecorder()
		MedicationCreate(&stubCatalogService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("prescription rejected by service", func(t *testing.T) {
		stub := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeValidation, catalog.OTCOnlyMessage)}
		payload := `{"name":"Amoxicillin","strength":"250mg","manufacturer":"GSK","requiresPrescription":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/medications", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		MedicationCreate(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "over-the-counter") {
			t.Fatalf("expected OTC message, got %s", rec.Body.String())
		}
	})

	t.Run("created", func(t *testing.T) {
		stub := &stubCatalogService{created: &catalog.MedicationDTO{ID: "med-9", Name: "Vitamin C"}}
		payload := `{"name":"  Vitamin C  ","strength":"1000mg","manufacturer":"HealthGuard","isOTC":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/medications", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		MedicationCreate(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastInput.Name != "Vitamin C" {
			t.Fatalf("expected trimmed name, got %q", stub.lastInput.Name)
		}
	})
}
