// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/integration/persistence/model"
)

// disposableBudgetRepository implements the adapter.DisposableBudgetRepository interface.
type disposableBudgetRepository struct {
	db *gorm.DB
}

// NewDisposableBudgetRepository creates a new disposable budget repository instance.
func NewDisposableBudgetRepository(db *gorm.DB) adapter.DisposableBudgetRepository {
	return &disposableBudgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *disposableBudgetRepository) Create(ctx context.Context, budget *entity.DisposableBudget) error {
	return conn(ctx, r.db).Create(model.DisposableBudgetFromEntity(budget)).Error
}

// FindByID retrieves a budget by its ID.
func (r *disposableBudgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DisposableBudget, error) {
	var budgetModel model.DisposableBudgetModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindForMonth retrieves the user's budget dated inside [start, end).
func (r *disposableBudgetRepository) FindForMonth(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.DisposableBudget, error) {
	var budgetModel model.DisposableBudgetModel
	result := conn(ctx, r.db).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.UTC(), end.UTC()).
		Order("date ASC").
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// Update saves an existing budget.
func (r *disposableBudgetRepository) Update(ctx context.Context, budget *entity.DisposableBudget) error {
	result := conn(ctx, r.db).
		Model(&model.DisposableBudgetModel{}).
		Where("id = ?", budget.ID).
		Updates(map[string]interface{}{
			"amount":     budget.Amount,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// DeleteBefore hard-deletes a user's budgets dated before cutoff.
func (r *disposableBudgetRepository) DeleteBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int64, error) {
	result := conn(ctx, r.db).
		Where("user_id = ? AND date < ?", userID, cutoff.UTC()).
		Delete(&model.DisposableBudgetModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// disposableSpendingRepository implements the adapter.DisposableSpendingRepository interface.
type disposableSpendingRepository struct {
	db *gorm.DB
}

// NewDisposableSpendingRepository creates a new disposable spending repository instance.
func NewDisposableSpendingRepository(db *gorm.DB) adapter.DisposableSpendingRepository {
	return &disposableSpendingRepository{
		db: db,
	}
}

// Create creates a new spending entry in the database.
func (r *disposableSpendingRepository) Create(ctx context.Context, spending *entity.DisposableSpending) error {
	return conn(ctx, r.db).Create(model.DisposableSpendingFromEntity(spending)).Error
}

// FindByID retrieves a spending entry by its ID.
func (r *disposableSpendingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DisposableSpending, error) {
	var spendingModel model.DisposableSpendingModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&spendingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSpendingNotFound
		}
		return nil, result.Error
	}
	return spendingModel.ToEntity(), nil
}

// FindByUserInRange retrieves a user's spending dated inside [start, end).
func (r *disposableSpendingRepository) FindByUserInRange(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]*entity.DisposableSpending, error) {
	var spendingModels []model.DisposableSpendingModel
	result := conn(ctx, r.db).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.UTC(), end.UTC()).
		Order("date ASC, created_at ASC").
		Find(&spendingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	spendings := make([]*entity.DisposableSpending, len(spendingModels))
	for i := range spendingModels {
		spendings[i] = spendingModels[i].ToEntity()
	}
	return spendings, nil
}

// Update saves an existing spending entry.
func (r *disposableSpendingRepository) Update(ctx context.Context, spending *entity.DisposableSpending) error {
	result := conn(ctx, r.db).
		Model(&model.DisposableSpendingModel{}).
		Where("id = ?", spending.ID).
		Updates(map[string]interface{}{
			"title":      spending.Title,
			"amount":     spending.Amount,
			"date":       spending.Date.UTC(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSpendingNotFound
	}
	return nil
}

// Delete removes a spending entry.
func (r *disposableSpendingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&model.DisposableSpendingModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSpendingNotFound
	}
	return nil
}

// DeleteBefore hard-deletes a user's spending dated before cutoff.
func (r *disposableSpendingRepository) DeleteBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int64, error) {
	result := conn(ctx, r.db).
		Where("user_id = ? AND date < ?", userID, cutoff.UTC()).
		Delete(&model.DisposableSpendingModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SumInRange sums a user's spending dated inside [start, end).
func (r *disposableSpendingRepository) SumInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error) {
	var sum int64
	err := conn(ctx, r.db).
		Model(&model.DisposableSpendingModel{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.UTC(), end.UTC()).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}
