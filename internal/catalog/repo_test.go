package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	medications := `
CREATE TABLE IF NOT EXISTS medications (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  strength TEXT NOT NULL,
  manufacturer TEXT NOT NULL,
  category TEXT,
  description TEXT,
  form_factor TEXT,
  requires_prescription INTEGER NOT NULL DEFAULT 0,
  is_otc INTEGER NOT NULL DEFAULT 1
);`
	require.NoError(t, db.Exec(medications).Error)
	require.NoError(t, db.Exec(`DELETE FROM medications`).Error)
	return db
}

func TestCreateAndListOrdersByName(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := "Pain Relief"
	_, err := repo.Create(ctx, CreateMedicationDTO{
		Name:         "Ibuprofen 400mg",
		Strength:     "400mg",
		Manufacturer: "May & Baker",
		Category:     &category,
		IsOTC:        true,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateMedicationDTO{
		Name:         "Aspirin 75mg",
		Strength:     "75mg",
		Manufacturer: "CardioHealth",
		IsOTC:        true,
	})
	require.NoError(t, err)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Aspirin 75mg", rows[0].Name)
	assert.Equal(t, "Ibuprofen 400mg", rows[1].Name)
}

func TestFindByID(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateMedicationDTO{
		Name:         "Cetirizine 10mg",
		Strength:     "10mg",
		Manufacturer: "Pharma Plus",
		IsOTC:        true,
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
