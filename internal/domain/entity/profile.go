// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile stores per-user automation state.
type UserProfile struct {
	UserID uuid.UUID
	// LastRepeatCheck is the first day of the last month for which
	// window maintenance completed. Nil until the first run.
	LastRepeatCheck *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUserProfile creates a profile that has never run maintenance.
func NewUserProfile(userID uuid.UUID) *UserProfile {
	now := time.Now().UTC()
	return &UserProfile{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CheckedFor reports whether maintenance already ran for the month starting at monthStart.
func (p *UserProfile) CheckedFor(monthStart time.Time) bool {
	return p.LastRepeatCheck != nil && p.LastRepeatCheck.Equal(monthStart)
}

// MarkChecked records that maintenance ran for the month starting at monthStart.
func (p *UserProfile) MarkChecked(monthStart time.Time) {
	m := monthStart
	p.LastRepeatCheck = &m
	p.UpdatedAt = time.Now().UTC()
}
