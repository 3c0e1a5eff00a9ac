// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
// (user_id, repeat_group_id, date) is unique so a series never holds two
// occurrences on the same date.
type IncomeModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_incomes_series_date,priority:1"`
	Title         string     `gorm:"type:varchar(100);not null"`
	Amount        int64      `gorm:"not null"`
	Date          time.Time  `gorm:"not null;index;uniqueIndex:idx_incomes_series_date,priority:3"`
	Repeated      string     `gorm:"type:varchar(10);not null;default:NEVER"`
	RepeatGroupID *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_incomes_series_date,priority:2"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain RecurringEntry entity.
func (m *IncomeModel) ToEntity() *entity.RecurringEntry {
	return &entity.RecurringEntry{
		ID:            m.ID,
		UserID:        m.UserID,
		Kind:          entity.EntryKindIncome,
		Title:         m.Title,
		Amount:        m.Amount,
		Date:          m.Date.UTC(),
		Repeated:      entity.RepeatFrequency(m.Repeated),
		RepeatGroupID: m.RepeatGroupID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// IncomeFromEntity converts a domain RecurringEntry entity to an IncomeModel.
func IncomeFromEntity(e *entity.RecurringEntry) *IncomeModel {
	return &IncomeModel{
		ID:            e.ID,
		UserID:        e.UserID,
		Title:         e.Title,
		Amount:        e.Amount,
		Date:          e.Date.UTC(),
		Repeated:      string(e.Repeated),
		RepeatGroupID: e.RepeatGroupID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ExpenditureModel represents the expenditures table in the database.
type ExpenditureModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_expenditures_series_date,priority:1"`
	Title         string     `gorm:"type:varchar(100);not null"`
	Amount        int64      `gorm:"not null"`
	Date          time.Time  `gorm:"not null;index;uniqueIndex:idx_expenditures_series_date,priority:3"`
	Repeated      string     `gorm:"type:varchar(10);not null;default:NEVER"`
	RepeatGroupID *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_expenditures_series_date,priority:2"`
	Type          string     `gorm:"type:varchar(12);not null;default:BILL;index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName returns the table name for the ExpenditureModel.
func (ExpenditureModel) TableName() string {
	return "expenditures"
}

// ToEntity converts an ExpenditureModel to a domain RecurringEntry entity.
func (m *ExpenditureModel) ToEntity() *entity.RecurringEntry {
	category := entity.ExpenditureType(m.Type)
	return &entity.RecurringEntry{
		ID:            m.ID,
		UserID:        m.UserID,
		Kind:          entity.EntryKindExpenditure,
		Title:         m.Title,
		Amount:        m.Amount,
		Date:          m.Date.UTC(),
		Repeated:      entity.RepeatFrequency(m.Repeated),
		RepeatGroupID: m.RepeatGroupID,
		Category:      &category,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ExpenditureFromEntity converts a domain RecurringEntry entity to an ExpenditureModel.
func ExpenditureFromEntity(e *entity.RecurringEntry) *ExpenditureModel {
	category := entity.ExpenditureTypeBill
	if e.Category != nil {
		category = *e.Category
	}
	return &ExpenditureModel{
		ID:            e.ID,
		UserID:        e.UserID,
		Title:         e.Title,
		Amount:        e.Amount,
		Date:          e.Date.UTC(),
		Repeated:      string(e.Repeated),
		RepeatGroupID: e.RepeatGroupID,
		Type:          string(category),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
