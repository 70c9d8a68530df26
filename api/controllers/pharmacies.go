package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/bokpharm/bokpharm-backend/api/responses"
	"github.com/bokpharm/bokpharm-backend/api/validators"
	"github.com/bokpharm/bokpharm-backend/internal/pharmacies"
	"github.com/bokpharm/bokpharm-backend/pkg/enums"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
	"github.com/bokpharm/bokpharm-backend/pkg/logger"
)

func PharmacyList(svc pharmacies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pharmacy service unavailable"))
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

func PharmacyDetail(svc pharmacies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pharmacy service unavailable"))
			return
		}

		pharmacy, err := svc.GetByID(r.Context(), chi.URLParam(r, "pharmacyId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, pharmacy)
	}
}

type createPharmacyRequest struct {
	Name             string           `json:"name" validate:"required"`
	Address          string           `json:"address" validate:"required"`
	Phone            string           `json:"phone" validate:"required"`
	Hours            *string          `json:"hours"`
	Rating           *decimal.Decimal `json:"rating"`
	IsOpen24Hours    *bool            `json:"isOpen24Hours"`
	DeliveryTime     *string          `json:"deliveryTime"`
	Distance         *string          `json:"distance"`
	Latitude         *decimal.Decimal `json:"latitude"`
	Longitude        *decimal.Decimal `json:"longitude"`
	DeliveryFee      *decimal.Decimal `json:"deliveryFee"`
	OnboardingStatus *string          `json:"onboardingStatus"`
}

func (req createPharmacyRequest) toInput() (pharmacies.CreatePharmacyDTO, error) {
	input := pharmacies.CreatePharmacyDTO{
		Name:          validators.SanitizeString(req.Name, 255),
		Address:       validators.SanitizeString(req.Address, 500),
		Phone:         validators.SanitizeString(req.Phone, 50),
		Hours:         req.Hours,
		Rating:        req.Rating,
		IsOpen24Hours: req.IsOpen24Hours,
		DeliveryTime:  req.DeliveryTime,
		Distance:      req.Distance,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		DeliveryFee:   req.DeliveryFee,
	}

	if req.OnboardingStatus != nil {
		status, err := enums.ParseOnboardingStatus(*req.OnboardingStatus)
		if err != nil {
			return input, pkgerrors.New(pkgerrors.CodeValidation, "invalid onboarding status").WithDetails(map[string]string{"onboardingStatus": "must be pending, active, or rejected"})
		}
		input.OnboardingStatus = &status
	}

	return input, nil
}

func PharmacyCreate(svc pharmacies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pharmacy service unavailable"))
			return
		}

		var body createPharmacyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pharmacy, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, pharmacy)
	}
}

// AdminPharmacyList filters pharmacies by onboarding status for review.
func AdminPharmacyList(svc pharmacies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pharmacy service unavailable"))
			return
		}

		status := validators.QueryString(r, "status", string(enums.OnboardingStatusPending))
		items, err := svc.ListByOnboardingStatus(r.Context(), enums.OnboardingStatus(status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}
