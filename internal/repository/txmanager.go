package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a read-decide-write sequence inside a single database
// transaction. Admission services combine it with row locks so their checks
// and commits are atomic.
type TxManager interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
