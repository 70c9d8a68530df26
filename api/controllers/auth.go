package controllers

import (
	"net/http"

	"github.com/bokpharm/bokpharm-backend/api/middleware"
	"github.com/bokpharm/bokpharm-backend/api/responses"
	"github.com/bokpharm/bokpharm-backend/api/validators"
	"github.com/bokpharm/bokpharm-backend/internal/onboarding"
	"github.com/bokpharm/bokpharm-backend/internal/users"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
	"github.com/bokpharm/bokpharm-backend/pkg/logger"
)

// AuthUser syncs the verified identity claims into the local user row and
// returns the caller's profile. Every authenticated page load hits this.
func AuthUser(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		claims := middleware.ClaimsFromContext(r.Context())
		user, err := svc.Sync(r.Context(), claims)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

// AuthSetupPharmacy links the caller to the bootstrap pharmacy.
func AuthSetupPharmacy(svc onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "onboarding service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		result, err := svc.SetupPharmacy(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

type assignPharmacyRequest struct {
	PharmacyID string `json:"pharmacyId" validate:"required"`
}

// AuthAssignPharmacy links the caller to an existing pharmacy by id.
func AuthAssignPharmacy(svc onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "onboarding service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var body assignPharmacyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.AssignPharmacy(r.Context(), userID, body.PharmacyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}
