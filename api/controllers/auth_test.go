package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bokpharm/bokpharm-backend/api/middleware"
	"github.com/bokpharm/bokpharm-backend/internal/onboarding"
	"github.com/bokpharm/bokpharm-backend/internal/pharmacies"
	"github.com/bokpharm/bokpharm-backend/internal/users"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
	"github.com/bokpharm/bokpharm-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

type stubOnboardingService struct {
	status      *onboarding.Status
	setupResult *onboarding.SetupResultDTO
	assigned    *users.UserDTO
	err         error
	lastAssign  string
}

func (s *stubOnboardingService) Check(_ context.Context, _ string) (*onboarding.Status, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.status, nil
}

func (s *stubOnboardingService) SetupPharmacy(_ context.Context, _ string) (*onboarding.SetupResultDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.setupResult, nil
}

func (s *stubOnboardingService) AssignPharmacy(_ context.Context, _, pharmacyID string) (*users.UserDTO, error) {
	s.lastAssign = pharmacyID
	if s.err != nil {
		return nil, s.err
	}
	return s.assigned, nil
}

func TestAuthSetupPharmacy(t *testing.T) {
	logg := testLogger()

	t.Run("missing user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/setup-pharmacy", nil)
		rec := httptest.NewRecorder()
		AuthSetupPharmacy(&stubOnboardingService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user context, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		pharmacyID := "ph-1"
		stub := &stubOnboardingService{
			setupResult: &onboarding.SetupResultDTO{
				User:     &users.UserDTO{ID: "idp-1", PharmacyID: &pharmacyID},
				Pharmacy: &pharmacies.PharmacyDTO{ID: pharmacyID, Name: "BoK Pharm - Demo Pharmacy"},
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/api/auth/setup-pharmacy", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), "idp-1"))
		rec := httptest.NewRecorder()
		AuthSetupPharmacy(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var body struct {
			User     *users.UserDTO          `json:"user"`
			Pharmacy *pharmacies.PharmacyDTO `json:"pharmacy"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.User == nil || body.Pharmacy == nil {
			t.Fatalf("expected user and pharmacy in payload, got %s", rec.Body.String())
		}
	})

	t.Run("already linked", func(t *testing.T) {
		stub := &stubOnboardingService{err: pkgerrors.New(pkgerrors.CodeConflict, "User already associated with a pharmacy")}
		req := httptest.NewRequest(http.MethodPost, "/api/auth/setup-pharmacy", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), "idp-1"))
		rec := httptest.NewRecorder()
		AuthSetupPharmacy(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})
}

func TestAuthAssignPharmacy(t *testing.T) {
	logg := testLogger()

	t.Run("missing pharmacy id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/assign-pharmacy", strings.NewReader(`{}`))
		req = req.WithContext(middleware.WithUserID(req.Context(), "idp-1"))
		rec := httptest.NewRecorder()
		AuthAssignPharmacy(&stubOnboardingService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		pharmacyID := "ph-2"
		stub := &stubOnboardingService{assigned: &users.UserDTO{ID: "idp-1", PharmacyID: &pharmacyID}}
		req := httptest.NewRequest(http.MethodPost, "/api/auth/assign-pharmacy", strings.NewReader(`{"pharmacyId":"ph-2"}`))
		req = req.WithContext(middleware.WithUserID(req.Context(), "idp-1"))
		rec := httptest.NewRecorder()
		AuthAssignPharmacy(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.lastAssign != "ph-2" {
			t.Fatalf("expected assign to ph-2, got %q", stub.lastAssign)
		}
	})
}
