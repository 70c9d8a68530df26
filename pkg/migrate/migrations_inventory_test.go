package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInventoryMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_inventory.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no inventory migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS inventory",
		"REFERENCES pharmacies(id)",
		"REFERENCES medications(id)",
		"CHECK (quantity >= 0)",
		"CHECK (price >= 0)",
		"DROP TABLE IF EXISTS inventory",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestDefaultMarkerMigrationIsPartialUnique(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_add_pharmacy_default_marker.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no default marker migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"ADD COLUMN IF NOT EXISTS is_default BOOLEAN",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_pharmacies_is_default",
		"WHERE is_default IS NOT NULL",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
