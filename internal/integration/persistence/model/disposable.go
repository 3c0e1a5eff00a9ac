// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/domain/entity"
)

// DisposableBudgetModel represents the disposable_budgets table in the database.
type DisposableBudgetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount    int64     `gorm:"not null;default:0"`
	Date      time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the DisposableBudgetModel.
func (DisposableBudgetModel) TableName() string {
	return "disposable_budgets"
}

// ToEntity converts a DisposableBudgetModel to a domain DisposableBudget entity.
func (m *DisposableBudgetModel) ToEntity() *entity.DisposableBudget {
	return &entity.DisposableBudget{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Date:      m.Date.UTC(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// DisposableBudgetFromEntity converts a domain DisposableBudget entity to a DisposableBudgetModel.
func DisposableBudgetFromEntity(b *entity.DisposableBudget) *DisposableBudgetModel {
	return &DisposableBudgetModel{
		ID:        b.ID,
		UserID:    b.UserID,
		Amount:    b.Amount,
		Date:      b.Date.UTC(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// DisposableSpendingModel represents the disposable_spendings table in the database.
type DisposableSpendingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Amount    int64     `gorm:"not null"`
	Date      time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the DisposableSpendingModel.
func (DisposableSpendingModel) TableName() string {
	return "disposable_spendings"
}

// ToEntity converts a DisposableSpendingModel to a domain DisposableSpending entity.
func (m *DisposableSpendingModel) ToEntity() *entity.DisposableSpending {
	return &entity.DisposableSpending{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Amount:    m.Amount,
		Date:      m.Date.UTC(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// DisposableSpendingFromEntity converts a domain DisposableSpending entity to a DisposableSpendingModel.
func DisposableSpendingFromEntity(s *entity.DisposableSpending) *DisposableSpendingModel {
	return &DisposableSpendingModel{
		ID:        s.ID,
		UserID:    s.UserID,
		Title:     s.Title,
		Amount:    s.Amount,
		Date:      s.Date.UTC(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
