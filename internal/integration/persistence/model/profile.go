// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/domain/entity"
)

// UserProfileModel represents the user_profiles table in the database.
type UserProfileModel struct {
	UserID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LastRepeatCheck *time.Time `gorm:"column:last_repeat_check"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

// TableName returns the table name for the UserProfileModel.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// ToEntity converts a UserProfileModel to a domain UserProfile entity.
func (m *UserProfileModel) ToEntity() *entity.UserProfile {
	var lastCheck *time.Time
	if m.LastRepeatCheck != nil {
		t := m.LastRepeatCheck.UTC()
		lastCheck = &t
	}
	return &entity.UserProfile{
		UserID:          m.UserID,
		LastRepeatCheck: lastCheck,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// UserProfileFromEntity converts a domain UserProfile entity to a UserProfileModel.
func UserProfileFromEntity(p *entity.UserProfile) *UserProfileModel {
	return &UserProfileModel{
		UserID:          p.UserID,
		LastRepeatCheck: p.LastRepeatCheck,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
