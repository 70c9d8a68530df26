package repo

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	return conn
}

func TestNewBaseStoresConnection(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)

	if base.db != db {
		t.Fatalf("expected base db to match provided connection")
	}
}

func TestBaseDB_BindsContext(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	withCtx := base.DB(ctx)

	if withCtx == nil {
		t.Fatalf("expected non-nil DB when context provided")
	}
	if withCtx.Statement == nil {
		t.Fatalf("expected statement created after WithContext")
	}
	if withCtx.Statement.Context != ctx {
		t.Fatalf("expected context to flow through, got %v", withCtx.Statement.Context)
	}

	withoutCtx := base.DB(nil)
	if withoutCtx != db {
		t.Fatalf("expected nil context to return raw connection")
	}
}

func TestBaseTxRollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	if err := db.Exec(`CREATE TABLE tx_probe_rows (id INTEGER PRIMARY KEY, name TEXT)`).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DROP TABLE tx_probe_rows`)
	})
	base := NewBase(db)
	ctx := context.Background()

	err := base.Tx(ctx, func(tx *gorm.DB) error {
		if execErr := tx.Exec(`INSERT INTO tx_probe_rows (name) VALUES ('doomed')`).Error; execErr != nil {
			return execErr
		}
		return context.Canceled
	})
	if err == nil {
		t.Fatal("expected error to propagate out of Tx")
	}

	var count int64
	if err := db.Table("tx_probe_rows").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to leave 0 rows, got %d", count)
	}

	if err := base.Tx(ctx, func(tx *gorm.DB) error {
		return tx.Exec(`INSERT INTO tx_probe_rows (name) VALUES ('kept')`).Error
	}); err != nil {
		t.Fatalf("commit tx: %v", err)
	}
	if err := db.Table("tx_probe_rows").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected committed row, got %d", count)
	}
}
