// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/domain/entity"
)

// EntryRepository defines persistence operations for income and expenditure entries.
// Every method is scoped to one entry kind; ranges are half-open [start, end).
type EntryRepository interface {
	// Create inserts a single entry.
	Create(ctx context.Context, entry *entity.RecurringEntry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, kind entity.EntryKind, id uuid.UUID) (*entity.RecurringEntry, error)

	// FindByUserInRange lists a user's entries dated inside the range, oldest first.
	FindByUserInRange(ctx context.Context, kind entity.EntryKind, userID uuid.UUID, start, end time.Time) ([]*entity.RecurringEntry, error)

	// Update saves all fields of an existing entry.
	Update(ctx context.Context, entry *entity.RecurringEntry) error

	// Delete removes a single entry.
	Delete(ctx context.Context, kind entity.EntryKind, id uuid.UUID) error

	// BulkInsert inserts entries, silently skipping any that collide with an
	// existing (user, group, date) row. Returns the number of rows inserted.
	BulkInsert(ctx context.Context, kind entity.EntryKind, entries []*entity.RecurringEntry) (int64, error)

	// AssignGroup sets or clears the repeat group of a single entry.
	AssignGroup(ctx context.Context, kind entity.EntryKind, id uuid.UUID, groupID *uuid.UUID) error

	// UpdateSeriesAfter copies fields onto every occurrence of groupID dated
	// strictly after `after` and moves them to newGroupID.
	UpdateSeriesAfter(
		ctx context.Context,
		kind entity.EntryKind,
		userID uuid.UUID,
		groupID uuid.UUID,
		after time.Time,
		fields entity.SeriesFields,
		newGroupID uuid.UUID,
	) (int64, error)

	// DeleteSeriesFrom deletes every occurrence of groupID dated on or after
	// from. When keepID is set, that row survives.
	DeleteSeriesFrom(
		ctx context.Context,
		kind entity.EntryKind,
		userID uuid.UUID,
		groupID uuid.UUID,
		from time.Time,
		keepID *uuid.UUID,
	) (int64, error)

	// FindRepeatingInRange lists a user's entries with the given frequency dated inside the range.
	FindRepeatingInRange(
		ctx context.Context,
		kind entity.EntryKind,
		userID uuid.UUID,
		repeated entity.RepeatFrequency,
		start, end time.Time,
	) ([]*entity.RecurringEntry, error)

	// SeriesDatesInRange returns the dates already occupied by a group inside
	// the range. A nil groupID matches entries without a group.
	SeriesDatesInRange(
		ctx context.Context,
		kind entity.EntryKind,
		userID uuid.UUID,
		groupID *uuid.UUID,
		start, end time.Time,
	) ([]time.Time, error)

	// DeleteBefore hard-deletes a user's entries dated strictly before cutoff.
	DeleteBefore(ctx context.Context, kind entity.EntryKind, userID uuid.UUID, cutoff time.Time) (int64, error)

	// SumInRange sums amounts in the range. A non-nil category filters expenditures by type.
	SumInRange(
		ctx context.Context,
		kind entity.EntryKind,
		userID uuid.UUID,
		start, end time.Time,
		category *entity.ExpenditureType,
	) (int64, error)
}
