package entry_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/application/usecase/entry"
	"github.com/sft-api/backend/internal/application/usecase/recurrence"
	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/domain/valueobject"
	"github.com/sft-api/backend/internal/integration/persistence"
	"github.com/sft-api/backend/internal/integration/persistence/persistencetest"
)

type fixture struct {
	repo   adapter.EntryRepository
	create *entry.CreateEntryUseCase
	update *entry.UpdateEntryUseCase
	delete *entry.DeleteEntryUseCase
	list   *entry.ListEntriesUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := persistencetest.NewDB(t)
	repo := persistence.NewEntryRepository(db)
	transactor := persistence.NewTransactor(db)
	generator := recurrence.NewGenerator(repo)
	coordinator := recurrence.NewCoordinator(repo, generator)

	return &fixture{
		repo:   repo,
		create: entry.NewCreateEntryUseCase(repo, transactor, generator),
		update: entry.NewUpdateEntryUseCase(repo, transactor, coordinator),
		delete: entry.NewDeleteEntryUseCase(repo, transactor, coordinator),
		list:   entry.NewListEntriesUseCase(repo),
	}
}

// all returns every entry of kind owned by userID in 2025, oldest first.
func (f *fixture) all(t *testing.T, kind entity.EntryKind, userID uuid.UUID) []*entity.RecurringEntry {
	t.Helper()
	entries, err := f.repo.FindByUserInRange(context.Background(), kind, userID, day(2025, time.January, 1), day(2026, time.January, 1))
	if err != nil {
		t.Fatalf("FindByUserInRange() error = %v", err)
	}
	return entries
}

func (f *fixture) at(t *testing.T, kind entity.EntryKind, userID uuid.UUID, date time.Time) *entity.RecurringEntry {
	t.Helper()
	for _, e := range f.all(t, kind, userID) {
		if e.Date.Equal(date) {
			return e
		}
	}
	t.Fatalf("no entry dated %s", date.Format(time.DateOnly))
	return nil
}

func countGroup(entries []*entity.RecurringEntry, group *uuid.UUID) int {
	n := 0
	for _, e := range entries {
		if e.RepeatGroupID != nil && group != nil && *e.RepeatGroupID == *group {
			n++
		}
	}
	return n
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func entryCode(err error) domainerror.EntryErrorCode {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		return entryErr.Code
	}
	return ""
}

func TestCreateEntryUseCase_Validation(t *testing.T) {
	f := newFixture(t)
	valid := entry.CreateEntryInput{
		UserID:   uuid.New(),
		Kind:     entity.EntryKindExpenditure,
		Title:    "Rent",
		Amount:   95000,
		Date:     day(2025, time.January, 1),
		Repeated: entity.RepeatNever,
	}

	tests := []struct {
		name   string
		modify func(in *entry.CreateEntryInput)
		want   domainerror.EntryErrorCode
	}{
		{"empty title", func(in *entry.CreateEntryInput) { in.Title = "  " }, domainerror.ErrCodeInvalidEntryTitle},
		{"title too long", func(in *entry.CreateEntryInput) { in.Title = strings.Repeat("a", 101) }, domainerror.ErrCodeInvalidEntryTitle},
		{"negative amount", func(in *entry.CreateEntryInput) { in.Amount = -1 }, domainerror.ErrCodeInvalidEntryAmount},
		{"missing date", func(in *entry.CreateEntryInput) { in.Date = time.Time{} }, domainerror.ErrCodeInvalidEntryDate},
		{"unknown frequency", func(in *entry.CreateEntryInput) { in.Repeated = "YEARLY" }, domainerror.ErrCodeInvalidRepeatFrequency},
		{"unknown type", func(in *entry.CreateEntryInput) { in.Type = ptr(entity.ExpenditureType("LUXURY")) }, domainerror.ErrCodeInvalidExpenditureType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.modify(&in)

			_, err := f.create.Execute(context.Background(), in)
			if got := entryCode(err); got != tt.want {
				t.Errorf("Execute() code = %q (err %v), want %q", got, err, tt.want)
			}
		})
	}

	t.Run("100 character title and zero amount are accepted", func(t *testing.T) {
		in := valid
		in.Title = strings.Repeat("é", 100)
		in.Amount = 0
		if _, err := f.create.Execute(context.Background(), in); err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		in := valid
		in.Kind = "transfer"
		if _, err := f.create.Execute(context.Background(), in); !errors.Is(err, domainerror.ErrUnknownEntryKind) {
			t.Errorf("Execute() error = %v, want ErrUnknownEntryKind", err)
		}
	})
}

func TestCreateEntryUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("monthly income is expanded into its series", func(t *testing.T) {
		f := newFixture(t)
		userID := uuid.New()

		out, err := f.create.Execute(ctx, entry.CreateEntryInput{
			UserID:   userID,
			Kind:     entity.EntryKindIncome,
			Title:    "Salary",
			Amount:   250000,
			Date:     day(2025, time.January, 31),
			Repeated: entity.RepeatMonthly,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Generated != 5 {
			t.Errorf("Generated = %d, want 5", out.Generated)
		}
		if out.Entry.RepeatGroupID == nil {
			t.Fatal("RepeatGroupID not set on the created entry")
		}
		if out.Entry.Type != nil {
			t.Errorf("income Type = %v, want nil", *out.Entry.Type)
		}

		entries := f.all(t, entity.EntryKindIncome, userID)
		if got := countGroup(entries, out.Entry.RepeatGroupID); got != 6 {
			t.Errorf("series size = %d, want 6", got)
		}
		if !f.at(t, entity.EntryKindIncome, userID, day(2025, time.February, 28)).Date.Equal(day(2025, time.February, 28)) {
			t.Error("February occurrence not clamped to the 28th")
		}
	})

	t.Run("expenditure defaults to BILL and single entries generate nothing", func(t *testing.T) {
		f := newFixture(t)
		userID := uuid.New()

		out, err := f.create.Execute(ctx, entry.CreateEntryInput{
			UserID: userID,
			Kind:   entity.EntryKindExpenditure,
			Title:  "Groceries",
			Amount: 4250,
			Date:   day(2025, time.March, 3),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Generated != 0 || out.Entry.RepeatGroupID != nil {
			t.Errorf("Generated = %d, group = %v, want 0 and nil", out.Generated, out.Entry.RepeatGroupID)
		}
		if out.Entry.Repeated != entity.RepeatNever {
			t.Errorf("Repeated = %q, want NEVER", out.Entry.Repeated)
		}
		if out.Entry.Type == nil || *out.Entry.Type != entity.ExpenditureTypeBill {
			t.Errorf("Type = %v, want BILL", out.Entry.Type)
		}
	})

	t.Run("daily entries are stored but not expanded", func(t *testing.T) {
		f := newFixture(t)
		userID := uuid.New()

		out, err := f.create.Execute(ctx, entry.CreateEntryInput{
			UserID:   userID,
			Kind:     entity.EntryKindExpenditure,
			Title:    "Coffee",
			Amount:   300,
			Date:     day(2025, time.March, 3),
			Repeated: entity.RepeatDaily,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Generated != 0 {
			t.Errorf("Generated = %d, want 0", out.Generated)
		}
		if got := len(f.all(t, entity.EntryKindExpenditure, userID)); got != 1 {
			t.Errorf("stored = %d, want 1", got)
		}
	})
}

func TestUpdateEntryUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	seedMonthly := func(t *testing.T, f *fixture, userID uuid.UUID) *entry.EntryOutput {
		t.Helper()
		out, err := f.create.Execute(ctx, entry.CreateEntryInput{
			UserID:   userID,
			Kind:     entity.EntryKindExpenditure,
			Title:    "Gym",
			Amount:   3000,
			Date:     day(2025, time.January, 15),
			Repeated: entity.RepeatMonthly,
		})
		if err != nil {
			t.Fatalf("seed error = %v", err)
		}
		return out.Entry
	}

	t.Run("not found and not owner", func(t *testing.T) {
		f := newFixture(t)
		owner := uuid.New()
		seeded := seedMonthly(t, f, owner)

		_, err := f.update.Execute(ctx, entry.UpdateEntryInput{
			EntryID: uuid.New(), UserID: owner, Kind: entity.EntryKindExpenditure, Amount: ptr(int64(1)),
		})
		if got := entryCode(err); got != domainerror.ErrCodeEntryNotFound {
			t.Errorf("unknown id code = %q, want %q", got, domainerror.ErrCodeEntryNotFound)
		}

		_, err = f.update.Execute(ctx, entry.UpdateEntryInput{
			EntryID: seeded.ID, UserID: uuid.New(), Kind: entity.EntryKindExpenditure, Amount: ptr(int64(1)),
		})
		if got := entryCode(err); got != domainerror.ErrCodeNotAuthorizedEntry {
			t.Errorf("other user code = %q, want %q", got, domainerror.ErrCodeNotAuthorizedEntry)
		}

		_, err = f.update.Execute(ctx, entry.UpdateEntryInput{
			EntryID: seeded.ID, UserID: owner, Kind: entity.EntryKindIncome, Amount: ptr(int64(1)),
		})
		if got := entryCode(err); got != domainerror.ErrCodeEntryNotFound {
			t.Errorf("wrong kind code = %q, want %q", got, domainerror.ErrCodeEntryNotFound)
		}
	})

	t.Run("amount change propagates forward only", func(t *testing.T) {
		f := newFixture(t)
		userID := uuid.New()
		seedMonthly(t, f, userID)
		march := f.at(t, entity.EntryKindExpenditure, userID, day(2025, time.March, 15))

		out, err := f.update.Execute(ctx, entry.UpdateEntryInput{
			EntryID: march.ID, UserID: userID, Kind: entity.EntryKindExpenditure, Amount: ptr(int64(3500)),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Case != recurrence.UpdatePropagate {
			t.Errorf("Case = %q, want %q", out.Case, recurrence.UpdatePropagate)
		}

		for _, e := range f.all(t, entity.EntryKindExpenditure, userID) {
			want := int64(3000)
			if !e.Date.Before(march.Date) {
				want = 3500
			}
			if e.Amount != want {
				t.Errorf("%s amount = %d, want %d", e.Date.Format(time.DateOnly), e.Amount, want)
			}
		}
	})

	t.Run("time of day change on the same day propagates", func(t *testing.T) {
		f := newFixture(t)
		userID := uuid.New()
		seeded := seedMonthly(t, f, userID)
		march := f.at(t, entity.EntryKindExpenditure, userID, day(2025, time.March, 15))

		out, err := f.update.Execute(ctx, entry.UpdateEntryInput{
			EntryID: march.ID, UserID: userID, Kind: entity.EntryKindExpenditure,
			Date: ptr(day(2025, time.March, 15).Add(9 * time.Hour)), Amount: ptr(int64(3300)),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Case != recurrence.UpdatePropagate {
			t.Errorf("Case = %q, want %q", out.Case, recurrence.UpdatePropagate)
		}

		entries := f.all(t, entity.EntryKindExpenditure, userID)
		if len(entries) != 6 {
			t.Errorf("entries = %d, want 6", len(entries))
		}
		if got := countGroup(entries, seeded.RepeatGroupID); got != 2 {
			t.Errorf("old group size = %d, want 2 (Jan, Feb)", got)
		}
		if got := countGroup(entries, out.Entry.RepeatGroupID); got != 4 {
			t.Errorf("new group size = %d, want 4 (Mar..Jun)", got)
		}
	})

	t.Run("moving an occurrence onto a sibling's date regenerates", func(t *testing.T) {
		f := newFixture(t)
		userID := uuid.New()
		seeded := seedMonthly(t, f, userID)
		march := f.at(t, entity.EntryKindExpenditure, userID, day(2025, time.March, 15))

		out, err := f.update.Execute(ctx, entry.UpdateEntryInput{
			EntryID: march.ID, UserID: userID, Kind: entity.EntryKindExpenditure, Date: ptr(day(2025, time.April, 15)),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Case != recurrence.UpdateRegenerate {
			t.Errorf("Case = %q, want %q", out.Case, recurrence.UpdateRegenerate)
		}
		if out.Entry.RepeatGroupID == nil || *out.Entry.RepeatGroupID == *seeded.RepeatGroupID {
			t.Fatalf("RepeatGroupID = %v, want a new group", out.Entry.RepeatGroupID)
		}

		entries := f.all(t, entity.EntryKindExpenditure, userID)
		if got := countGroup(entries, seeded.RepeatGroupID); got != 2 {
			t.Errorf("old group size = %d, want 2 (Jan, Feb)", got)
		}
		if got := countGroup(entries, out.Entry.RepeatGroupID); got != 6 {
			t.Errorf("new group size = %d, want 6 (Apr..Sep)", got)
		}
		if len(entries) != 8 {
			t.Errorf("total entries = %d, want 8", len(entries))
		}
	})

	t.Run("switching to NEVER detaches the tail", func(t *testing.T) {
		f := newFixture(t)
		userID := uuid.New()
		seedMonthly(t, f, userID)
		april := f.at(t, entity.EntryKindExpenditure, userID, day(2025, time.April, 15))

		out, err := f.update.Execute(ctx, entry.UpdateEntryInput{
			EntryID: april.ID, UserID: userID, Kind: entity.EntryKindExpenditure, Repeated: ptr(entity.RepeatNever),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Case != recurrence.UpdateDetach {
			t.Errorf("Case = %q, want %q", out.Case, recurrence.UpdateDetach)
		}
		if out.Entry.RepeatGroupID != nil {
			t.Errorf("RepeatGroupID = %v, want nil", *out.Entry.RepeatGroupID)
		}
		if got := len(f.all(t, entity.EntryKindExpenditure, userID)); got != 4 {
			t.Errorf("entries = %d, want 4 (Jan..Apr)", got)
		}
	})

	t.Run("invalid update leaves the entry unchanged", func(t *testing.T) {
		f := newFixture(t)
		userID := uuid.New()
		seedMonthly(t, f, userID)
		march := f.at(t, entity.EntryKindExpenditure, userID, day(2025, time.March, 15))

		_, err := f.update.Execute(ctx, entry.UpdateEntryInput{
			EntryID: march.ID, UserID: userID, Kind: entity.EntryKindExpenditure,
			Amount: ptr(int64(9999)), Title: ptr(""),
		})
		if err == nil {
			t.Fatal("Execute() error = nil, want validation error")
		}
		if got := f.at(t, entity.EntryKindExpenditure, userID, day(2025, time.March, 15)).Amount; got != 3000 {
			t.Errorf("amount = %d, want unchanged 3000", got)
		}
	})
}

func TestDeleteEntryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()

	out, err := f.create.Execute(ctx, entry.CreateEntryInput{
		UserID:   userID,
		Kind:     entity.EntryKindIncome,
		Title:    "Pocket money",
		Amount:   1000,
		Date:     day(2025, time.January, 6),
		Repeated: entity.RepeatWeekly,
	})
	if err != nil {
		t.Fatalf("seed error = %v", err)
	}
	before := len(f.all(t, entity.EntryKindIncome, userID))

	target := f.at(t, entity.EntryKindIncome, userID, day(2025, time.March, 3))
	if _, err := f.delete.Execute(ctx, entry.DeleteEntryInput{EntryID: target.ID, UserID: uuid.New(), Kind: entity.EntryKindIncome}); entryCode(err) != domainerror.ErrCodeNotAuthorizedEntry {
		t.Errorf("other user error = %v, want not authorized", err)
	}

	deleted, err := f.delete.Execute(ctx, entry.DeleteEntryInput{EntryID: target.ID, UserID: userID, Kind: entity.EntryKindIncome})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	remaining := f.all(t, entity.EntryKindIncome, userID)
	if int64(before-len(remaining)) != deleted.Deleted {
		t.Errorf("Deleted = %d, but %d rows disappeared", deleted.Deleted, before-len(remaining))
	}
	for _, e := range remaining {
		if !e.Date.Before(target.Date) {
			t.Errorf("occurrence %s survived the delete", e.Date.Format(time.DateOnly))
		}
	}
	if countGroup(remaining, out.Entry.RepeatGroupID) != 8 {
		t.Errorf("remaining = %d, want 8 (Jan 6 .. Feb 24)", countGroup(remaining, out.Entry.RepeatGroupID))
	}

	if _, err := f.delete.Execute(ctx, entry.DeleteEntryInput{EntryID: target.ID, UserID: userID, Kind: entity.EntryKindIncome}); entryCode(err) != domainerror.ErrCodeEntryNotFound {
		t.Errorf("second delete error = %v, want not found", err)
	}
}

func TestListEntriesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()

	for _, in := range []entry.CreateEntryInput{
		{UserID: userID, Kind: entity.EntryKindIncome, Title: "Salary", Amount: 200000, Date: day(2025, time.April, 1), Repeated: entity.RepeatMonthly},
		{UserID: userID, Kind: entity.EntryKindIncome, Title: "Refund", Amount: 1500, Date: day(2025, time.May, 20)},
		{UserID: uuid.New(), Kind: entity.EntryKindIncome, Title: "Other", Amount: 7, Date: day(2025, time.May, 2)},
	} {
		if _, err := f.create.Execute(ctx, in); err != nil {
			t.Fatalf("seed error = %v", err)
		}
	}

	out, err := f.list.Execute(ctx, entry.ListEntriesInput{
		UserID: userID,
		Kind:   entity.EntryKindIncome,
		Month:  valueobject.ResolveMonth("2025-05", time.Now()),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(out.Entries))
	}
	if out.Total != 201500 {
		t.Errorf("Total = %d, want 201500", out.Total)
	}
	if !out.Entries[0].Date.Equal(day(2025, time.May, 1)) {
		t.Errorf("first entry = %s, want 2025-05-01", out.Entries[0].Date.Format(time.DateOnly))
	}
}
