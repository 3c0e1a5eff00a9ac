// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DisposableBudget is the monthly budget a user sets for disposable spending.
// There is at most one budget per user per month.
type DisposableBudget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    int64
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDisposableBudget creates an empty budget dated at date.
func NewDisposableBudget(userID uuid.UUID, date time.Time) *DisposableBudget {
	now := time.Now().UTC()
	return &DisposableBudget{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    0,
		Date:      date.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DisposableSpending is a single purchase paid from disposable income.
type DisposableSpending struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Amount    int64
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDisposableSpending creates a new disposable spending entry.
func NewDisposableSpending(userID uuid.UUID, title string, amount int64, date time.Time) *DisposableSpending {
	now := time.Now().UTC()
	return &DisposableSpending{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Amount:    amount,
		Date:      date.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
