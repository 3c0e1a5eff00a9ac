// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/domain/entity"
)

// CurrencyPreferenceModel represents the currency_preferences table in the database.
type CurrencyPreferenceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Code      string    `gorm:"type:varchar(3);not null;default:'GBP'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CurrencyPreferenceModel.
func (CurrencyPreferenceModel) TableName() string {
	return "currency_preferences"
}

// ToEntity converts a CurrencyPreferenceModel to a domain CurrencyPreference entity.
func (m *CurrencyPreferenceModel) ToEntity() *entity.CurrencyPreference {
	return &entity.CurrencyPreference{
		ID:        m.ID,
		UserID:    m.UserID,
		Code:      entity.CurrencyCode(m.Code),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CurrencyPreferenceFromEntity converts a domain CurrencyPreference entity to a CurrencyPreferenceModel.
func CurrencyPreferenceFromEntity(c *entity.CurrencyPreference) *CurrencyPreferenceModel {
	return &CurrencyPreferenceModel{
		ID:        c.ID,
		UserID:    c.UserID,
		Code:      string(c.Code),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
