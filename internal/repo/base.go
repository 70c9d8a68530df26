package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/bokpharm/bokpharm-backend/pkg/db"
)

// Base provides a shared foundation for domain repositories.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
func NewBase(conn *gorm.DB) Base {
	return Base{db: conn}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Tx runs fn inside a transaction on the repository's connection.
func (b Base) Tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return db.WithTx(ctx, b.db, fn)
}
