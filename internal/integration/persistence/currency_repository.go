// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/integration/persistence/model"
)

// currencyRepository implements the adapter.CurrencyRepository interface.
type currencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository creates a new currency preference repository instance.
func NewCurrencyRepository(db *gorm.DB) adapter.CurrencyRepository {
	return &currencyRepository{
		db: db,
	}
}

// GetOrCreate returns the user's preference. The unique user_id index makes
// concurrent first accesses converge on one row.
func (r *currencyRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.CurrencyPreference, error) {
	db := conn(ctx, r.db)

	fresh := model.CurrencyPreferenceFromEntity(entity.NewCurrencyPreference(userID))
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(fresh).Error; err != nil {
		return nil, err
	}

	var currencyModel model.CurrencyPreferenceModel
	if err := db.Where("user_id = ?", userID).First(&currencyModel).Error; err != nil {
		return nil, err
	}
	return currencyModel.ToEntity(), nil
}

// FindByID retrieves a preference by its ID.
func (r *currencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CurrencyPreference, error) {
	var currencyModel model.CurrencyPreferenceModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&currencyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCurrencyNotFound
		}
		return nil, result.Error
	}
	return currencyModel.ToEntity(), nil
}

// UpdateCode changes the code of an existing preference.
func (r *currencyRepository) UpdateCode(ctx context.Context, id uuid.UUID, code entity.CurrencyCode) error {
	result := conn(ctx, r.db).
		Model(&model.CurrencyPreferenceModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"code":       string(code),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCurrencyNotFound
	}
	return nil
}
