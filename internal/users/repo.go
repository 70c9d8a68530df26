package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bokpharm/bokpharm-backend/internal/repo"
	"github.com/bokpharm/bokpharm-backend/pkg/db/models"
)

// Repository exposes user-related persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(conn)}
}

// FindByID loads a user by their identity-provider subject.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert inserts the user or refreshes their profile on conflict. The
// pharmacy link is never touched here: login must not undo onboarding.
func (r *Repository) Upsert(ctx context.Context, dto UpsertUserDTO) (*models.User, error) {
	user := dto.ToModel()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	assignments := []string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}
	if dto.Role != nil {
		assignments = append(assignments, "role")
	}

	err := r.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(assignments),
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, user.ID)
}

// AssignPharmacy links the user to a pharmacy and returns the updated row.
func (r *Repository) AssignPharmacy(ctx context.Context, userID, pharmacyID string) (*models.User, error) {
	tx := r.DB(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"pharmacy_id": pharmacyID,
			"updated_at":  time.Now().UTC(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, userID)
}
