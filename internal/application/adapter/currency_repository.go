// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/domain/entity"
)

// CurrencyRepository defines persistence operations for currency preferences.
type CurrencyRepository interface {
	// GetOrCreate returns the user's preference, creating the default one if needed.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.CurrencyPreference, error)

	// FindByID retrieves a preference by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CurrencyPreference, error)

	// UpdateCode changes the code of an existing preference.
	UpdateCode(ctx context.Context, id uuid.UUID, code entity.CurrencyCode) error
}
