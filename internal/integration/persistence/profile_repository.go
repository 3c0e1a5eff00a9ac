// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	"github.com/sft-api/backend/internal/integration/persistence/model"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// GetOrCreate returns the user's profile, inserting an empty one first if needed.
// Concurrent callers converge on the same row.
func (r *profileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	db := conn(ctx, r.db)

	fresh := model.UserProfileFromEntity(entity.NewUserProfile(userID))
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(fresh).Error; err != nil {
		return nil, err
	}

	var profileModel model.UserProfileModel
	if err := db.Where("user_id = ?", userID).First(&profileModel).Error; err != nil {
		return nil, err
	}
	return profileModel.ToEntity(), nil
}

// Save persists the profile.
func (r *profileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	return conn(ctx, r.db).Save(model.UserProfileFromEntity(profile)).Error
}
