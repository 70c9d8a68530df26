package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/pkg/auth"
	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
	pkgerrors "github.com/bokpharm/bokpharm-backend/pkg/errors"
)

type userRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	Upsert(ctx context.Context, dto UpsertUserDTO) (*models.User, error)
}

// Service exposes identity sync operations.
type Service interface {
	Sync(ctx context.Context, claims *auth.IdentityClaims) (*UserDTO, error)
	GetByID(ctx context.Context, id string) (*UserDTO, error)
}

type service struct {
	repo userRepository
}

// NewService builds a users service with the provided repository.
func NewService(repo userRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo}, nil
}

// Sync upserts the user row from the identity provider's claims. Every login
// refreshes the profile; the first login creates the row.
func (s *service) Sync(ctx context.Context, claims *auth.IdentityClaims) (*UserDTO, error) {
	if claims == nil || strings.TrimSpace(claims.Subject) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing identity claims")
	}

	dto := UpsertUserDTO{
		ID:              claims.Subject,
		Email:           optionalString(claims.Email),
		FirstName:       optionalString(claims.GivenName),
		LastName:        optionalString(claims.FamilyName),
		ProfileImageURL: optionalString(claims.Picture),
		Role:            claims.Role,
	}

	user, err := s.repo.Upsert(ctx, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert user")
	}
	return FromModel(user), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return FromModel(user), nil
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
