// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/sft-api/backend/internal/application/adapter"
)

type txKey struct{}

// transactor implements the adapter.Transactor interface.
type transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor instance.
func NewTransactor(db *gorm.DB) adapter.Transactor {
	return &transactor{
		db: db,
	}
}

// WithinTransaction runs fn inside a database transaction carried on ctx.
// A call made with a context that already carries one joins it.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction carried on ctx, or db when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
