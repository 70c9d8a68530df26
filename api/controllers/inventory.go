package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/bokpharm/bokpharm-backend/api/middleware"
	"github.com/bokpharm/bokpharm-backend/api/responses"
	"github.com/bokpharm/bokpharm-backend/api/validators"
	"github.com/bokpharm/bokpharm-backend/internal/inventory"
	"github.com/bokpharm/bokpharm-backend/internal/onboarding"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
	"github.com/bokpharm/bokpharm-backend/pkg/logger"
	"github.com/bokpharm/bokpharm-backend/pkg/types"
)

// setupRequiredMessage is what the dashboard shows pharmacy users who have
// not completed onboarding yet.
const setupRequiredMessage = "Please set up your pharmacy first"

type inventoryListResponse struct {
	Items      []inventory.InventoryItemDTO `json:"items"`
	NeedsSetup bool                         `json:"needsSetup"`
}

// resolvePharmacy loads the caller's onboarding state, returning the linked
// pharmacy id or the needs-setup marker.
func resolvePharmacy(r *http.Request, svc onboarding.Service) (string, bool, error) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		return "", false, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}

	status, err := svc.Check(r.Context(), userID)
	if err != nil {
		return "", false, err
	}
	if status.NeedsSetup || status.PharmacyID == nil {
		return "", true, nil
	}
	return *status.PharmacyID, false, nil
}

// InventoryList returns the caller's stocked items. Unonboarded callers get
// an empty list with the needsSetup marker instead of an error.
func InventoryList(svc inventory.Service, onboardingSvc onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || onboardingSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		pharmacyID, needsSetup, err := resolvePharmacy(r, onboardingSvc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if needsSetup {
			responses.WriteSuccess(w, inventoryListResponse{Items: []inventory.InventoryItemDTO{}, NeedsSetup: true})
			return
		}

		items, err := svc.List(r.Context(), pharmacyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, inventoryListResponse{Items: items, NeedsSetup: false})
	}
}

type createInventoryItemRequest struct {
	MedicationID  string           `json:"medicationId" validate:"required"`
	Quantity      int              `json:"quantity" validate:"gte=0"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	InStock       *bool            `json:"inStock"`
	ExpiryDate    *types.FlexTime  `json:"expiryDate"`
	BatchNumber   *string          `json:"batchNumber"`
	// Ignored when present: the pharmacy is always taken from the caller.
	PharmacyID *string `json:"pharmacyId"`
}

func (req createInventoryItemRequest) toInput() inventory.CreateItemDTO {
	input := inventory.CreateItemDTO{
		MedicationID:  req.MedicationID,
		Quantity:      req.Quantity,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		InStock:       req.InStock,
		BatchNumber:   req.BatchNumber,
	}
	if req.ExpiryDate != nil {
		expiry := req.ExpiryDate.Time
		input.ExpiryDate = &expiry
	}
	return input
}

// InventoryCreate stocks a medication for the caller's pharmacy.
func InventoryCreate(svc inventory.Service, onboardingSvc onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || onboardingSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		pharmacyID, needsSetup, err := resolvePharmacy(r, onboardingSvc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if needsSetup {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNeedsSetup, setupRequiredMessage))
			return
		}

		var body createInventoryItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), pharmacyID, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// InventoryDelete removes one of the caller's stocked items.
func InventoryDelete(svc inventory.Service, onboardingSvc onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || onboardingSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		pharmacyID, needsSetup, err := resolvePharmacy(r, onboardingSvc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if needsSetup {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNeedsSetup, setupRequiredMessage))
			return
		}

		if err := svc.Delete(r.Context(), pharmacyID, chi.URLParam(r, "itemId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}
