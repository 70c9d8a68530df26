package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/bokpharm/bokpharm-backend/api/middleware"
	"github.com/bokpharm/bokpharm-backend/internal/inventory"
	"github.com/bokpharm/bokpharm-backend/internal/onboarding"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
)

type stubInventoryService struct {
	items   []inventory.InventoryItemDTO
	created *inventory.InventoryItemDTO
	err     error

	lastPharmacy string
	lastInput    *inventory.CreateItemDTO
	deletedItem  string
}

func (s *stubInventoryService) List(_ context.Context, pharmacyID string) ([]inventory.InventoryItemDTO, error) {
	s.lastPharmacy = pharmacyID
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *stubInventoryService) Create(_ context.Context, pharmacyID string, input inventory.CreateItemDTO) (*inventory.InventoryItemDTO, error) {
	s.lastPharmacy = pharmacyID
	s.lastInput = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubInventoryService) Delete(_ context.Context, pharmacyID, itemID string) error {
	s.lastPharmacy = pharmacyID
	s.deletedItem = itemID
	return s.err
}

func onboardedStub(pharmacyID string) *stubOnboardingService {
	return &stubOnboardingService{status: &onboarding.Status{PharmacyID: &pharmacyID}}
}

func needsSetupStub() *stubOnboardingService {
	return &stubOnboardingService{status: &onboarding.Status{NeedsSetup: true}}
}

func TestInventoryList(t *testing.T) {
	logg := testLogger()

	t.Run("needs setup", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), "idp-1"))
		rec := httptest.NewRecorder()
		InventoryList(&stubInventoryService{}, needsSetupStub(), logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var body inventoryListResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !body.NeedsSetup {
			t.Fatal("expected needsSetup marker")
		}
		if body.Items == nil || len(body.Items) != 0 {
			t.Fatalf("expected empty items array, got %s", rec.Body.String())
		}
	})

	t.Run("scoped to caller's pharmacy", func(t *testing.T) {
		stub := &stubInventoryService{items: []inventory.InventoryItemDTO{{ID: "inv-1", Price: "12.50"}}}
		req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), "idp-1"))
		rec := httptest.NewRecorder()
		InventoryList(stub, onboardedStub("ph-1"), logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.lastPharmacy != "ph-1" {
			t.Fatalf("expected list scoped to ph-1, got %q", stub.lastPharmacy)
		}
		if !strings.Contains(rec.Body.String(), `"price":"12.50"`) {
			t.Fatalf("expected fixed-point price in payload, got %s", rec.Body.String())
		}
	})
}

func TestInventoryCreate(t *testing.T) {
	logg := testLogger()

	t.Run("needs setup", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/inventory", strings.NewReader(`{"medicationId":"med-1","price":"12.50"}`))
		req = req.WithContext(middleware.WithUserID(req.Context(), "idp-1"))
		rec := httptest.NewRecorder()
		InventoryCreate(&stubInventoryService{}, needsSetupStub(), logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var body struct {
			Code       string `json:"code"`
			Message    string `json:"message"`
			NeedsSetup bool   `json:"needsSetup"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !body.NeedsSetup || body.Message != setupRequiredMessage {
			t.Fatalf("unexpected payload %s", rec.Body.String())
		}
		if body.Code != string(pkgerrors.CodeNeedsSetup) {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("pharmacy coerced from caller", func(t *testing.T) {
		created := &inventory.InventoryItemDTO{ID: "inv-9", PharmacyID: "ph-1", Price: "12.50"}
		stub := &stubInventoryService{created: created}
		payload := `{"medicationId":"med-1","quantity":5,"price":12.5,"pharmacyId":"someone-elses"}`
		req := httptest.NewRequest(http.MethodPost, "/api/inventory", strings.NewReader(payload))
		req = req.WithContext(middleware.WithUserID(req.Context(), "idp-1"))
		rec := httptest.NewRecorder()
		InventoryCreate(stub, onboardedStub("ph-1"), logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastPharmacy != "ph-1" {
			t.Fatalf("expected create scoped to caller's pharmacy, got %q", stub.lastPharmacy)
		}
		if !stub.lastInput.Price.Equal(decimal.NewFromFloat(12.5)) {
			t.Fatalf("expected price 12.5, got %s", stub.lastInput.Price)
		}
	})

	t.Run("accepts bare date expiry", func(t *testing.T) {
		stub := &stubInventoryService{created: &inventory.InventoryItemDTO{ID: "inv-9"}}
		payload := `{"medicationId":"med-1","quantity":1,"price":"3.00","expiryDate":"2027-01-31"}`
		req := httptest.NewRequest(http.MethodPost, "/api/inventory", strings.NewReader(payload))
		req = req.WithContext(middleware.WithUserID(req.Context(), "idp-1"))
		rec := httptest.NewRecorder()
		InventoryCreate(stub, onboardedStub("ph-1"), logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastInput.ExpiryDate == nil || stub.lastInput.ExpiryDate.Year() != 2027 {
			t.Fatalf("expected parsed expiry date, got %v", stub.lastInput.ExpiryDate)
		}
	})
}

func TestInventoryDelete(t *testing.T) {
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		stub := &stubInventoryService{}
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("itemId", "inv-3")
		ctx := middleware.WithUserID(context.Background(), "idp-1")
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
		req := httptest.NewRequest(http.MethodDelete, "/api/inventory/inv-3", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		InventoryDelete(stub, onboardedStub("ph-1"), logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if stub.deletedItem != "inv-3" {
			t.Fatalf("expected delete of inv-3, got %q", stub.deletedItem)
		}
	})

	t.Run("foreign item reads as missing", func(t *testing.T) {
		stub := &stubInventoryService{err: pkgerrors.New(pkgerrors.CodeNotFound, "Inventory item not found")}
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("itemId", "inv-9")
		ctx := middleware.WithUserID(context.Background(), "idp-1")
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
		req := httptest.NewRequest(http.MethodDelete, "/api/inventory/inv-9", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		InventoryDelete(stub, onboardedStub("ph-1"), logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
