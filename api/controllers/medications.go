package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bokpharm/bokpharm-backend/api/responses"
	"github.com/bokpharm/bokpharm-backend/api/validators"
	"github.com/bokpharm/bokpharm-backend/internal/catalog"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
	"github.com/bokpharm/bokpharm-backend/pkg/logger"
)

// MedicationList returns the shared catalog, optionally truncated by limit.
func MedicationList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, 500)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if limit > 0 && limit < len(items) {
			items = items[:limit]
		}

		responses.WriteSuccess(w, items)
	}
}

func MedicationDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		medication, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicationId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, medication)
	}
}

type createMedicationRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Strength             string  `json:"strength" validate:"required"`
	Manufacturer         string  `json:"manufacturer" validate:"required"`
	Category             *string `json:"category"`
	Description          *string `json:"description"`
	FormFactor           *string `json:"formFactor"`
	RequiresPrescription bool    `json:"requiresPrescription"`
	IsOTC                bool    `json:"isOTC"`
}

func (req createMedicationRequest) toInput() catalog.CreateMedicationDTO {
	return catalog.CreateMedicationDTO{
		Name:                 validators.SanitizeString(req.Name, 255),
		Strength:             validators.SanitizeString(req.Strength, 100),
		Manufacturer:         validators.SanitizeString(req.Manufacturer, 255),
		Category:             req.Category,
		Description:          req.Description,
		FormFactor:           req.FormFactor,
		RequiresPrescription: req.RequiresPrescription,
		IsOTC:                req.IsOTC,
	}
}

// MedicationCreate adds a catalog entry. Prescription-only products are
// rejected by the service.
func MedicationCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body createMedicationRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		medication, err := svc.Create(r.Context(), body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, medication)
	}
}
