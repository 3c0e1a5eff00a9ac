// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/domain/entity"
)

// ProfileRepository defines persistence operations for user profiles.
type ProfileRepository interface {
	// GetOrCreate returns the user's profile, creating an empty one if needed.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// Save persists the profile.
	Save(ctx context.Context, profile *entity.UserProfile) error
}
