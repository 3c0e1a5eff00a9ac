// Package recurrence contains the recurring-entry engine: series generation,
// group maintenance on edit and delete, and the monthly window roll.
package recurrence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/domain/valueobject"
)

// Generator materializes the forward occurrences of a repeating entry.
type Generator struct {
	entryRepo adapter.EntryRepository
}

// NewGenerator creates a new Generator instance.
func NewGenerator(entryRepo adapter.EntryRepository) *Generator {
	return &Generator{
		entryRepo: entryRepo,
	}
}

// Generate dispatches on the entry's frequency. Entries that do not repeat
// weekly or monthly are left alone.
func (g *Generator) Generate(ctx context.Context, entry *entity.RecurringEntry) (int64, error) {
	switch entry.Repeated {
	case entity.RepeatWeekly:
		return g.GenerateWeekly(ctx, entry)
	case entity.RepeatMonthly:
		return g.GenerateMonthly(ctx, entry)
	default:
		return 0, nil
	}
}

// GenerateWeekly inserts one occurrence every 7 days after entry.Date up to
// the last day of the fifth month after it.
func (g *Generator) GenerateWeekly(ctx context.Context, entry *entity.RecurringEntry) (int64, error) {
	if entry.Repeated != entity.RepeatWeekly {
		return 0, domainerror.ErrNotASeries
	}
	return g.materialize(ctx, entry, WeeklyDates(entry.Date))
}

// GenerateMonthly inserts one occurrence in each of the five months after
// entry.Date, clamping the day to each month's length.
func (g *Generator) GenerateMonthly(ctx context.Context, entry *entity.RecurringEntry) (int64, error) {
	if entry.Repeated != entity.RepeatMonthly {
		return 0, domainerror.ErrNotASeries
	}
	return g.materialize(ctx, entry, MonthlyDates(entry.Date))
}

func (g *Generator) materialize(ctx context.Context, entry *entity.RecurringEntry, dates []time.Time) (int64, error) {
	if err := g.ensureGroup(ctx, entry); err != nil {
		return 0, err
	}

	occurrences := make([]*entity.RecurringEntry, 0, len(dates))
	for _, d := range dates {
		occurrences = append(occurrences, entry.Occurrence(d))
	}

	inserted, err := g.entryRepo.BulkInsert(ctx, entry.Kind, occurrences)
	if err != nil {
		return 0, fmt.Errorf("failed to insert occurrences: %w", err)
	}
	return inserted, nil
}

// ensureGroup assigns and persists a group id. An existing id is never replaced.
func (g *Generator) ensureGroup(ctx context.Context, entry *entity.RecurringEntry) error {
	if entry.RepeatGroupID != nil {
		return nil
	}

	groupID := uuid.New()
	if err := g.entryRepo.AssignGroup(ctx, entry.Kind, entry.ID, &groupID); err != nil {
		return fmt.Errorf("failed to assign repeat group: %w", err)
	}
	entry.RepeatGroupID = &groupID
	return nil
}

// WeeklyDates returns base+7d, base+14d, ... while the calendar date is on
// or before the final visible day of base's window.
func WeeklyDates(base time.Time) []time.Time {
	base = base.UTC()
	final := valueobject.FinalVisibleDay(base)

	var dates []time.Time
	for d := base.AddDate(0, 0, 7); !valueobject.DateOnly(d).After(final); d = d.AddDate(0, 0, 7) {
		dates = append(dates, d)
	}
	return dates
}

// MonthlyDates returns the five monthly occurrences after base. Each one is
// clamped from base's own day, so Jan 31 yields Feb 28 then Mar 31.
func MonthlyDates(base time.Time) []time.Time {
	base = base.UTC()

	dates := make([]time.Time, 0, valueobject.ForwardMonths)
	for i := 1; i <= valueobject.ForwardMonths; i++ {
		dates = append(dates, valueobject.AddMonthsClamped(base, i))
	}
	return dates
}
