package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/internal/pharmacies"
	"github.com/bokpharm/bokpharm-backend/internal/users"
	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
)

type userStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	AssignPharmacy(ctx context.Context, userID, pharmacyID string) (*models.User, error)
}

type pharmacyProvider interface {
	GetByID(ctx context.Context, id string) (*pharmacies.PharmacyDTO, error)
	EnsureDefault(ctx context.Context) (*pharmacies.PharmacyDTO, error)
}

// Status reports whether the caller still needs pharmacy onboarding.
type Status struct {
	NeedsSetup bool
	PharmacyID *string
}

// SetupResultDTO is the response of a successful setup: the relinked user and
// the pharmacy they were attached to.
type SetupResultDTO struct {
	User     *users.UserDTO          `json:"user"`
	Pharmacy *pharmacies.PharmacyDTO `json:"pharmacy"`
}

// Service gates pharmacy-scoped features behind onboarding.
type Service interface {
	Check(ctx context.Context, userID string) (*Status, error)
	SetupPharmacy(ctx context.Context, userID string) (*SetupResultDTO, error)
	AssignPharmacy(ctx context.Context, userID, pharmacyID string) (*users.UserDTO, error)
}

type service struct {
	users      userStore
	pharmacies pharmacyProvider
}

// NewService builds an onboarding service with the provided collaborators.
func NewService(usersRepo userStore, pharmacySvc pharmacyProvider) (Service, error) {
	if usersRepo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if pharmacySvc == nil {
		return nil, fmt.Errorf("pharmacies service required")
	}
	return &service{users: usersRepo, pharmacies: pharmacySvc}, nil
}

// Check resolves the caller's onboarding state. A missing user row reads the
// same as an unlinked one: setup is still required.
func (s *service) Check(ctx context.Context, userID string) (*Status, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Status{NeedsSetup: true}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	if user.PharmacyID == nil || *user.PharmacyID == "" {
		return &Status{NeedsSetup: true}, nil
	}
	return &Status{NeedsSetup: false, PharmacyID: user.PharmacyID}, nil
}

// SetupPharmacy bootstraps the demo pharmacy and links the caller to it.
// Linking is one-shot: a second call conflicts instead of relinking.
func (s *service) SetupPharmacy(ctx context.Context, userID string) (*SetupResultDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	if user.PharmacyID != nil && *user.PharmacyID != "" {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "User already associated with a pharmacy")
	}

	pharmacy, err := s.pharmacies.EnsureDefault(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.AssignPharmacy(ctx, userID, pharmacy.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "assign user to pharmacy")
	}

	return &SetupResultDTO{
		User:     users.FromModel(updated),
		Pharmacy: pharmacy,
	}, nil
}

// AssignPharmacy links the caller to an existing pharmacy of their choice.
func (s *service) AssignPharmacy(ctx context.Context, userID, pharmacyID string) (*users.UserDTO, error) {
	if strings.TrimSpace(pharmacyID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Pharmacy ID is required")
	}

	// The link column has no enforced FK on legacy rows, so existence is
	// checked up front instead of surfacing a constraint error.
	if _, err := s.pharmacies.GetByID(ctx, pharmacyID); err != nil {
		return nil, err
	}

	updated, err := s.users.AssignPharmacy(ctx, userID, pharmacyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "assign user to pharmacy")
	}
	return users.FromModel(updated), nil
}
