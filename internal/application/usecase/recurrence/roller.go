package recurrence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	"github.com/sft-api/backend/internal/domain/valueobject"
)

// PruneResult reports rows removed by PruneExpired, per table.
type PruneResult struct {
	Incomes      int64
	Expenditures int64
	Spendings    int64
	Budgets      int64
}

// Total returns the number of rows removed across all tables.
func (r PruneResult) Total() int64 {
	return r.Incomes + r.Expenditures + r.Spendings + r.Budgets
}

// Roller moves the visibility window forward: it extends series into the
// newly visible sixth month and deletes rows that fell off the back.
type Roller struct {
	entryRepo    adapter.EntryRepository
	budgetRepo   adapter.DisposableBudgetRepository
	spendingRepo adapter.DisposableSpendingRepository
}

// NewRoller creates a new Roller instance.
func NewRoller(
	entryRepo adapter.EntryRepository,
	budgetRepo adapter.DisposableBudgetRepository,
	spendingRepo adapter.DisposableSpendingRepository,
) *Roller {
	return &Roller{
		entryRepo:    entryRepo,
		budgetRepo:   budgetRepo,
		spendingRepo: spendingRepo,
	}
}

// ExtendIntoSixthMonth clones the fifth-month occurrences of every monthly
// and weekly series of kind one period forward into the sixth month.
// Dates already taken by the series are skipped. Returns the rows inserted.
func (r *Roller) ExtendIntoSixthMonth(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	current time.Time,
) (int64, error) {
	fifth := valueobject.FifthMonth(current)
	sixth := valueobject.SixthMonth(current)
	taken := newOccupancy(r.entryRepo, kind, userID, fifth.Start, sixth.End)

	var pending []*entity.RecurringEntry

	monthly, err := r.entryRepo.FindRepeatingInRange(ctx, kind, userID, entity.RepeatMonthly, fifth.Start, fifth.End)
	if err != nil {
		return 0, fmt.Errorf("failed to load monthly occurrences: %w", err)
	}
	for _, occ := range monthly {
		next := valueobject.AddMonthsClamped(occ.Date, 1)
		free, err := taken.claim(ctx, occ.RepeatGroupID, next)
		if err != nil {
			return 0, err
		}
		if free {
			pending = append(pending, occ.Occurrence(next))
		}
	}

	weekly, err := r.entryRepo.FindRepeatingInRange(ctx, kind, userID, entity.RepeatWeekly, fifth.Start, fifth.End)
	if err != nil {
		return 0, fmt.Errorf("failed to load weekly occurrences: %w", err)
	}
	for _, anchor := range latestPerGroup(weekly) {
		for next := anchor.Date.AddDate(0, 0, 7); next.Before(sixth.End); next = next.AddDate(0, 0, 7) {
			free, err := taken.claim(ctx, anchor.RepeatGroupID, next)
			if err != nil {
				return 0, err
			}
			if free {
				pending = append(pending, anchor.Occurrence(next))
			}
		}
	}

	if len(pending) == 0 {
		return 0, nil
	}

	inserted, err := r.entryRepo.BulkInsert(ctx, kind, pending)
	if err != nil {
		return 0, fmt.Errorf("failed to insert extended occurrences: %w", err)
	}
	return inserted, nil
}

// PruneExpired hard-deletes every row of the user dated before the retention
// cutoff of current's month, across all four tables.
func (r *Roller) PruneExpired(ctx context.Context, userID uuid.UUID, current time.Time) (PruneResult, error) {
	cutoff := valueobject.RetentionCutoff(current)
	var result PruneResult
	var err error

	if result.Incomes, err = r.entryRepo.DeleteBefore(ctx, entity.EntryKindIncome, userID, cutoff); err != nil {
		return PruneResult{}, fmt.Errorf("failed to prune incomes: %w", err)
	}
	if result.Expenditures, err = r.entryRepo.DeleteBefore(ctx, entity.EntryKindExpenditure, userID, cutoff); err != nil {
		return PruneResult{}, fmt.Errorf("failed to prune expenditures: %w", err)
	}
	if result.Spendings, err = r.spendingRepo.DeleteBefore(ctx, userID, cutoff); err != nil {
		return PruneResult{}, fmt.Errorf("failed to prune disposable spending: %w", err)
	}
	if result.Budgets, err = r.budgetRepo.DeleteBefore(ctx, userID, cutoff); err != nil {
		return PruneResult{}, fmt.Errorf("failed to prune disposable budgets: %w", err)
	}

	return result, nil
}

// latestPerGroup returns, for each weekly group, its latest occurrence.
// Occurrences without a group cannot anchor a series and are dropped.
// Groups keep the order in which they first appear.
func latestPerGroup(occurrences []*entity.RecurringEntry) []*entity.RecurringEntry {
	index := make(map[uuid.UUID]int)
	var anchors []*entity.RecurringEntry

	for _, occ := range occurrences {
		if occ.RepeatGroupID == nil {
			continue
		}
		i, seen := index[*occ.RepeatGroupID]
		if !seen {
			index[*occ.RepeatGroupID] = len(anchors)
			anchors = append(anchors, occ)
			continue
		}
		if occ.Date.After(anchors[i].Date) {
			anchors[i] = occ
		}
	}
	return anchors
}

// occupancy tracks which dates each group already holds, including dates
// claimed earlier in the same pass. A nil group is tracked as its own set.
type occupancy struct {
	repo   adapter.EntryRepository
	kind   entity.EntryKind
	userID uuid.UUID
	start  time.Time
	end    time.Time
	dates  map[uuid.UUID]map[int64]struct{}
}

func newOccupancy(repo adapter.EntryRepository, kind entity.EntryKind, userID uuid.UUID, start, end time.Time) *occupancy {
	return &occupancy{
		repo:   repo,
		kind:   kind,
		userID: userID,
		start:  start,
		end:    end,
		dates:  make(map[uuid.UUID]map[int64]struct{}),
	}
}

// claim reports whether date is free in the group and, if so, marks it taken.
func (o *occupancy) claim(ctx context.Context, groupID *uuid.UUID, date time.Time) (bool, error) {
	key := uuid.Nil
	if groupID != nil {
		key = *groupID
	}

	set, ok := o.dates[key]
	if !ok {
		existing, err := o.repo.SeriesDatesInRange(ctx, o.kind, o.userID, groupID, o.start, o.end)
		if err != nil {
			return false, fmt.Errorf("failed to load series dates: %w", err)
		}
		set = make(map[int64]struct{}, len(existing))
		for _, d := range existing {
			set[d.Unix()] = struct{}{}
		}
		o.dates[key] = set
	}

	if _, exists := set[date.Unix()]; exists {
		return false, nil
	}
	set[date.Unix()] = struct{}{}
	return true, nil
}
