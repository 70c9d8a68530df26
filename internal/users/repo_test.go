package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT UNIQUE,
  first_name TEXT,
  last_name TEXT,
  profile_image_url TEXT,
  role TEXT NOT NULL DEFAULT 'customer',
  pharmacy_id TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(users).Error)
	require.NoError(t, db.Exec(`DELETE FROM users`).Error)
	return db
}

func TestUpsertCreatesThenRefreshes(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	email := "ade@example.com"
	first := "Ade"
	created, err := repo.Upsert(ctx, UpsertUserDTO{
		ID:        "idp-1",
		Email:     &email,
		FirstName: &first,
	})
	require.NoError(t, err)
	assert.Equal(t, "idp-1", created.ID)
	assert.Equal(t, enums.UserRoleCustomer, created.Role)
	require.NotNil(t, created.Email)
	assert.Equal(t, email, *created.Email)

	// Second login with an updated profile refreshes fields in place.
	newFirst := "Adebayo"
	role := enums.UserRolePharmacy
	updated, err := repo.Upsert(ctx, UpsertUserDTO{
		ID:        "idp-1",
		Email:     &email,
		FirstName: &newFirst,
		Role:      &role,
	})
	require.NoError(t, err)
	assert.Equal(t, "idp-1", updated.ID)
	require.NotNil(t, updated.FirstName)
	assert.Equal(t, newFirst, *updated.FirstName)
	assert.Equal(t, enums.UserRolePharmacy, updated.Role)

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertPreservesPharmacyLink(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, UpsertUserDTO{ID: "idp-2"})
	require.NoError(t, err)

	pharmacyID := uuid.NewString()
	require.NoError(t, db.Exec(`UPDATE users SET pharmacy_id = ? WHERE id = ?`, pharmacyID, "idp-2").Error)

	refreshed, err := repo.Upsert(ctx, UpsertUserDTO{ID: "idp-2"})
	require.NoError(t, err)
	require.NotNil(t, refreshed.PharmacyID)
	assert.Equal(t, pharmacyID, *refreshed.PharmacyID)
}

func TestAssignPharmacy(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, UpsertUserDTO{ID: "idp-3"})
	require.NoError(t, err)

	pharmacyID := uuid.NewString()
	user, err := repo.AssignPharmacy(ctx, "idp-3", pharmacyID)
	require.NoError(t, err)
	require.NotNil(t, user.PharmacyID)
	assert.Equal(t, pharmacyID, *user.PharmacyID)
}

func TestAssignPharmacyUnknownUser(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.AssignPharmacy(context.Background(), "missing", uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
