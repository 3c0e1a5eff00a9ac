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

const bulkInsertBatchSize = 100

// entryRepository implements the adapter.EntryRepository interface over the
// incomes and expenditures tables.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// table returns a query bound to the table that stores kind.
func (r *entryRepository) table(ctx context.Context, kind entity.EntryKind) (*gorm.DB, error) {
	switch kind {
	case entity.EntryKindIncome:
		return conn(ctx, r.db).Model(&model.IncomeModel{}), nil
	case entity.EntryKindExpenditure:
		return conn(ctx, r.db).Model(&model.ExpenditureModel{}), nil
	default:
		return nil, domainerror.ErrUnknownEntryKind
	}
}

// find runs query against kind's table and converts the rows.
func (r *entryRepository) find(ctx context.Context, kind entity.EntryKind, query func(db *gorm.DB) *gorm.DB) ([]*entity.RecurringEntry, error) {
	db, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}
	db = query(db)

	switch kind {
	case entity.EntryKindIncome:
		var rows []model.IncomeModel
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		entries := make([]*entity.RecurringEntry, len(rows))
		for i := range rows {
			entries[i] = rows[i].ToEntity()
		}
		return entries, nil
	default:
		var rows []model.ExpenditureModel
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		entries := make([]*entity.RecurringEntry, len(rows))
		for i := range rows {
			entries[i] = rows[i].ToEntity()
		}
		return entries, nil
	}
}

// toModels converts entries to the model slice stored for kind.
func toModels(kind entity.EntryKind, entries []*entity.RecurringEntry) (interface{}, error) {
	switch kind {
	case entity.EntryKindIncome:
		rows := make([]*model.IncomeModel, len(entries))
		for i, e := range entries {
			rows[i] = model.IncomeFromEntity(e)
		}
		return rows, nil
	case entity.EntryKindExpenditure:
		rows := make([]*model.ExpenditureModel, len(entries))
		for i, e := range entries {
			rows[i] = model.ExpenditureFromEntity(e)
		}
		return rows, nil
	default:
		return nil, domainerror.ErrUnknownEntryKind
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.RecurringEntry) error {
	var row interface{}
	switch entry.Kind {
	case entity.EntryKindIncome:
		row = model.IncomeFromEntity(entry)
	case entity.EntryKindExpenditure:
		row = model.ExpenditureFromEntity(entry)
	default:
		return domainerror.ErrUnknownEntryKind
	}
	return conn(ctx, r.db).Create(row).Error
}

// FindByID retrieves an entry by its ID.
func (r *entryRepository) FindByID(ctx context.Context, kind entity.EntryKind, id uuid.UUID) (*entity.RecurringEntry, error) {
	entries, err := r.find(ctx, kind, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id).Limit(1)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domainerror.ErrEntryNotFound
	}
	return entries[0], nil
}

// FindByUserInRange retrieves a user's entries dated inside [start, end).
func (r *entryRepository) FindByUserInRange(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	start, end time.Time,
) ([]*entity.RecurringEntry, error) {
	return r.find(ctx, kind, func(db *gorm.DB) *gorm.DB {
		return db.
			Where("user_id = ? AND date >= ? AND date < ?", userID, start.UTC(), end.UTC()).
			Order("date ASC, created_at ASC")
	})
}

// Update saves all fields of an existing entry.
func (r *entryRepository) Update(ctx context.Context, entry *entity.RecurringEntry) error {
	db, err := r.table(ctx, entry.Kind)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"title":           entry.Title,
		"amount":          entry.Amount,
		"date":            entry.Date.UTC(),
		"repeated":        string(entry.Repeated),
		"repeat_group_id": entry.RepeatGroupID,
		"updated_at":      time.Now().UTC(),
	}
	if entry.HasCategory() && entry.Category != nil {
		updates["type"] = string(*entry.Category)
	}

	result := db.Where("id = ?", entry.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// Delete removes a single entry.
func (r *entryRepository) Delete(ctx context.Context, kind entity.EntryKind, id uuid.UUID) error {
	db, err := r.table(ctx, kind)
	if err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(db.Statement.Model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// BulkInsert inserts entries and skips rows that collide on (user, group, date).
func (r *entryRepository) BulkInsert(ctx context.Context, kind entity.EntryKind, entries []*entity.RecurringEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	rows, err := toModels(kind, entries)
	if err != nil {
		return 0, err
	}

	result := conn(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, bulkInsertBatchSize)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// AssignGroup sets or clears the repeat group of a single entry.
func (r *entryRepository) AssignGroup(ctx context.Context, kind entity.EntryKind, id uuid.UUID, groupID *uuid.UUID) error {
	db, err := r.table(ctx, kind)
	if err != nil {
		return err
	}

	result := db.Where("id = ?", id).Updates(map[string]interface{}{
		"repeat_group_id": groupID,
		"updated_at":      time.Now().UTC(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// UpdateSeriesAfter copies fields onto later occurrences of a group and re-keys them.
func (r *entryRepository) UpdateSeriesAfter(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	groupID uuid.UUID,
	after time.Time,
	fields entity.SeriesFields,
	newGroupID uuid.UUID,
) (int64, error) {
	db, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}

	updates := map[string]interface{}{
		"title":           fields.Title,
		"amount":          fields.Amount,
		"repeated":        string(fields.Repeated),
		"repeat_group_id": newGroupID,
		"updated_at":      time.Now().UTC(),
	}
	if kind == entity.EntryKindExpenditure && fields.Category != nil {
		updates["type"] = string(*fields.Category)
	}

	result := db.
		Where("user_id = ? AND repeat_group_id = ? AND date > ?", userID, groupID, after.UTC()).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteSeriesFrom deletes occurrences of a group dated on or after from.
func (r *entryRepository) DeleteSeriesFrom(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	groupID uuid.UUID,
	from time.Time,
	keepID *uuid.UUID,
) (int64, error) {
	db, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}

	query := db.Where("user_id = ? AND repeat_group_id = ? AND date >= ?", userID, groupID, from.UTC())
	if keepID != nil {
		query = query.Where("id <> ?", *keepID)
	}

	result := query.Delete(db.Statement.Model)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindRepeatingInRange lists a user's entries with the given frequency dated inside [start, end).
func (r *entryRepository) FindRepeatingInRange(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	repeated entity.RepeatFrequency,
	start, end time.Time,
) ([]*entity.RecurringEntry, error) {
	return r.find(ctx, kind, func(db *gorm.DB) *gorm.DB {
		return db.
			Where("user_id = ? AND repeated = ? AND date >= ? AND date < ?", userID, string(repeated), start.UTC(), end.UTC()).
			Order("date ASC")
	})
}

// SeriesDatesInRange returns the dates a group already occupies inside [start, end).
func (r *entryRepository) SeriesDatesInRange(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	groupID *uuid.UUID,
	start, end time.Time,
) ([]time.Time, error) {
	entries, err := r.find(ctx, kind, func(db *gorm.DB) *gorm.DB {
		query := db.Where("user_id = ? AND date >= ? AND date < ?", userID, start.UTC(), end.UTC())
		if groupID == nil {
			return query.Where("repeat_group_id IS NULL")
		}
		return query.Where("repeat_group_id = ?", *groupID)
	})
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(entries))
	for i, e := range entries {
		dates[i] = e.Date
	}
	return dates, nil
}

// DeleteBefore hard-deletes a user's entries dated before cutoff.
func (r *entryRepository) DeleteBefore(ctx context.Context, kind entity.EntryKind, userID uuid.UUID, cutoff time.Time) (int64, error) {
	db, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}

	result := db.Where("user_id = ? AND date < ?", userID, cutoff.UTC()).Delete(db.Statement.Model)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SumInRange sums amounts dated inside [start, end), optionally filtered by expenditure type.
func (r *entryRepository) SumInRange(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	start, end time.Time,
	category *entity.ExpenditureType,
) (int64, error) {
	db, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}

	query := db.Where("user_id = ? AND date >= ? AND date < ?", userID, start.UTC(), end.UTC())
	if category != nil {
		query = query.Where("type = ?", string(*category))
	}

	var sum int64
	if err := query.Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}
