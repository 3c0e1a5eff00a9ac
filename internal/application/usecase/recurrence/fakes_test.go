package recurrence

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
)

// memStore is an in-memory backing store shared by the fake repositories.
// WithinTransaction restores the previous state when fn fails.
type memStore struct {
	mu        sync.Mutex
	entries   map[uuid.UUID]*entity.RecurringEntry
	budgets   map[uuid.UUID]*entity.DisposableBudget
	spendings map[uuid.UUID]*entity.DisposableSpending
	profiles  map[uuid.UUID]*entity.UserProfile
	failures  map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		entries:   make(map[uuid.UUID]*entity.RecurringEntry),
		budgets:   make(map[uuid.UUID]*entity.DisposableBudget),
		spendings: make(map[uuid.UUID]*entity.DisposableSpending),
		profiles:  make(map[uuid.UUID]*entity.UserProfile),
		failures:  make(map[string]error),
	}
}

func (s *memStore) failOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *memStore) fail(op string) error {
	return s.failures[op]
}

type memSnapshot struct {
	entries   map[uuid.UUID]*entity.RecurringEntry
	budgets   map[uuid.UUID]*entity.DisposableBudget
	spendings map[uuid.UUID]*entity.DisposableSpending
	profiles  map[uuid.UUID]*entity.UserProfile
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := memSnapshot{
		entries:   make(map[uuid.UUID]*entity.RecurringEntry, len(s.entries)),
		budgets:   make(map[uuid.UUID]*entity.DisposableBudget, len(s.budgets)),
		spendings: make(map[uuid.UUID]*entity.DisposableSpending, len(s.spendings)),
		profiles:  make(map[uuid.UUID]*entity.UserProfile, len(s.profiles)),
	}
	for id, e := range s.entries {
		snap.entries[id] = e.Snapshot()
	}
	for id, b := range s.budgets {
		cp := *b
		snap.budgets[id] = &cp
	}
	for id, sp := range s.spendings {
		cp := *sp
		snap.spendings[id] = &cp
	}
	for id, p := range s.profiles {
		snap.profiles[id] = copyProfile(p)
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = snap.entries
	s.budgets = snap.budgets
	s.spendings = snap.spendings
	s.profiles = snap.profiles
}

// WithinTransaction implements adapter.Transactor.
func (s *memStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := s.snapshot()
	if err := fn(ctx); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func copyProfile(p *entity.UserProfile) *entity.UserProfile {
	cp := *p
	if p.LastRepeatCheck != nil {
		t := *p.LastRepeatCheck
		cp.LastRepeatCheck = &t
	}
	return &cp
}

// entriesOf returns copies of the stored entries of kind owned by userID, oldest first.
func (s *memStore) entriesOf(kind entity.EntryKind, userID uuid.UUID) []*entity.RecurringEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterLocked(func(e *entity.RecurringEntry) bool {
		return e.Kind == kind && e.UserID == userID
	})
}

func (s *memStore) filterLocked(keep func(e *entity.RecurringEntry) bool) []*entity.RecurringEntry {
	var out []*entity.RecurringEntry
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, e.Snapshot())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func sameGroup(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// memEntryRepo implements adapter.EntryRepository.
type memEntryRepo struct{ s *memStore }

func (r *memEntryRepo) Create(ctx context.Context, entry *entity.RecurringEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("entry.Create"); err != nil {
		return err
	}
	r.s.entries[entry.ID] = entry.Snapshot()
	return nil
}

func (r *memEntryRepo) FindByID(ctx context.Context, kind entity.EntryKind, id uuid.UUID) (*entity.RecurringEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.entries[id]
	if !ok || e.Kind != kind {
		return nil, domainerror.ErrEntryNotFound
	}
	return e.Snapshot(), nil
}

func (r *memEntryRepo) FindByUserInRange(
	ctx context.Context, kind entity.EntryKind, userID uuid.UUID, start, end time.Time,
) ([]*entity.RecurringEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.filterLocked(func(e *entity.RecurringEntry) bool {
		return e.Kind == kind && e.UserID == userID && inRange(e.Date, start, end)
	}), nil
}

func (r *memEntryRepo) Update(ctx context.Context, entry *entity.RecurringEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("entry.Update"); err != nil {
		return err
	}
	if _, ok := r.s.entries[entry.ID]; !ok {
		return domainerror.ErrEntryNotFound
	}
	r.s.entries[entry.ID] = entry.Snapshot()
	return nil
}

func (r *memEntryRepo) Delete(ctx context.Context, kind entity.EntryKind, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.entries[id]
	if !ok || e.Kind != kind {
		return domainerror.ErrEntryNotFound
	}
	delete(r.s.entries, id)
	return nil
}

func (r *memEntryRepo) BulkInsert(ctx context.Context, kind entity.EntryKind, entries []*entity.RecurringEntry) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("entry.BulkInsert"); err != nil {
		return 0, err
	}

	var inserted int64
	for _, candidate := range entries {
		if candidate.RepeatGroupID != nil && r.occupiedLocked(candidate) {
			continue
		}
		r.s.entries[candidate.ID] = candidate.Snapshot()
		inserted++
	}
	return inserted, nil
}

func (r *memEntryRepo) occupiedLocked(candidate *entity.RecurringEntry) bool {
	for _, e := range r.s.entries {
		if e.Kind == candidate.Kind &&
			e.UserID == candidate.UserID &&
			sameGroup(e.RepeatGroupID, candidate.RepeatGroupID) &&
			e.Date.Equal(candidate.Date) {
			return true
		}
	}
	return false
}

func (r *memEntryRepo) AssignGroup(ctx context.Context, kind entity.EntryKind, id uuid.UUID, groupID *uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.entries[id]
	if !ok || e.Kind != kind {
		return domainerror.ErrEntryNotFound
	}
	if groupID == nil {
		e.RepeatGroupID = nil
		return nil
	}
	g := *groupID
	e.RepeatGroupID = &g
	return nil
}

func (r *memEntryRepo) UpdateSeriesAfter(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	groupID uuid.UUID,
	after time.Time,
	fields entity.SeriesFields,
	newGroupID uuid.UUID,
) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var updated int64
	for _, e := range r.s.entries {
		if e.Kind != kind || e.UserID != userID || !sameGroup(e.RepeatGroupID, &groupID) || !e.Date.After(after) {
			continue
		}
		e.Title = fields.Title
		e.Amount = fields.Amount
		e.Repeated = fields.Repeated
		if fields.Category != nil {
			c := *fields.Category
			e.Category = &c
		}
		g := newGroupID
		e.RepeatGroupID = &g
		updated++
	}
	return updated, nil
}

func (r *memEntryRepo) DeleteSeriesFrom(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	groupID uuid.UUID,
	from time.Time,
	keepID *uuid.UUID,
) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var deleted int64
	for id, e := range r.s.entries {
		if e.Kind != kind || e.UserID != userID || !sameGroup(e.RepeatGroupID, &groupID) || e.Date.Before(from) {
			continue
		}
		if keepID != nil && id == *keepID {
			continue
		}
		delete(r.s.entries, id)
		deleted++
	}
	return deleted, nil
}

func (r *memEntryRepo) FindRepeatingInRange(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	repeated entity.RepeatFrequency,
	start, end time.Time,
) ([]*entity.RecurringEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.filterLocked(func(e *entity.RecurringEntry) bool {
		return e.Kind == kind && e.UserID == userID && e.Repeated == repeated && inRange(e.Date, start, end)
	}), nil
}

func (r *memEntryRepo) SeriesDatesInRange(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	groupID *uuid.UUID,
	start, end time.Time,
) ([]time.Time, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var dates []time.Time
	for _, e := range r.s.entries {
		if e.Kind == kind && e.UserID == userID && sameGroup(e.RepeatGroupID, groupID) && inRange(e.Date, start, end) {
			dates = append(dates, e.Date)
		}
	}
	return dates, nil
}

func (r *memEntryRepo) DeleteBefore(ctx context.Context, kind entity.EntryKind, userID uuid.UUID, cutoff time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("entry.DeleteBefore"); err != nil {
		return 0, err
	}

	var deleted int64
	for id, e := range r.s.entries {
		if e.Kind == kind && e.UserID == userID && e.Date.Before(cutoff) {
			delete(r.s.entries, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memEntryRepo) SumInRange(
	ctx context.Context,
	kind entity.EntryKind,
	userID uuid.UUID,
	start, end time.Time,
	category *entity.ExpenditureType,
) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var sum int64
	for _, e := range r.s.entries {
		if e.Kind != kind || e.UserID != userID || !inRange(e.Date, start, end) {
			continue
		}
		if category != nil && (e.Category == nil || *e.Category != *category) {
			continue
		}
		sum += e.Amount
	}
	return sum, nil
}

// memBudgetRepo implements adapter.DisposableBudgetRepository.
type memBudgetRepo struct{ s *memStore }

func (r *memBudgetRepo) Create(ctx context.Context, budget *entity.DisposableBudget) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *budget
	r.s.budgets[budget.ID] = &cp
	return nil
}

func (r *memBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.DisposableBudget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memBudgetRepo) FindForMonth(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.DisposableBudget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.budgets {
		if b.UserID == userID && inRange(b.Date, start, end) {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (r *memBudgetRepo) Update(ctx context.Context, budget *entity.DisposableBudget) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *budget
	r.s.budgets[budget.ID] = &cp
	return nil
}

func (r *memBudgetRepo) DeleteBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("budget.DeleteBefore"); err != nil {
		return 0, err
	}

	var deleted int64
	for id, b := range r.s.budgets {
		if b.UserID == userID && b.Date.Before(cutoff) {
			delete(r.s.budgets, id)
			deleted++
		}
	}
	return deleted, nil
}

// memSpendingRepo implements adapter.DisposableSpendingRepository.
type memSpendingRepo struct{ s *memStore }

func (r *memSpendingRepo) Create(ctx context.Context, spending *entity.DisposableSpending) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *spending
	r.s.spendings[spending.ID] = &cp
	return nil
}

func (r *memSpendingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.DisposableSpending, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sp, ok := r.s.spendings[id]
	if !ok {
		return nil, domainerror.ErrSpendingNotFound
	}
	cp := *sp
	return &cp, nil
}

func (r *memSpendingRepo) FindByUserInRange(
	ctx context.Context, userID uuid.UUID, start, end time.Time,
) ([]*entity.DisposableSpending, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.DisposableSpending
	for _, sp := range r.s.spendings {
		if sp.UserID == userID && inRange(sp.Date, start, end) {
			cp := *sp
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memSpendingRepo) Update(ctx context.Context, spending *entity.DisposableSpending) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *spending
	r.s.spendings[spending.ID] = &cp
	return nil
}

func (r *memSpendingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.spendings, id)
	return nil
}

func (r *memSpendingRepo) DeleteBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("spending.DeleteBefore"); err != nil {
		return 0, err
	}

	var deleted int64
	for id, sp := range r.s.spendings {
		if sp.UserID == userID && sp.Date.Before(cutoff) {
			delete(r.s.spendings, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memSpendingRepo) SumInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var sum int64
	for _, sp := range r.s.spendings {
		if sp.UserID == userID && inRange(sp.Date, start, end) {
			sum += sp.Amount
		}
	}
	return sum, nil
}

// memProfileRepo implements adapter.ProfileRepository.
type memProfileRepo struct{ s *memStore }

func (r *memProfileRepo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("profile.GetOrCreate"); err != nil {
		return nil, err
	}
	p, ok := r.s.profiles[userID]
	if !ok {
		p = entity.NewUserProfile(userID)
		r.s.profiles[userID] = p
	}
	return copyProfile(p), nil
}

func (r *memProfileRepo) Save(ctx context.Context, profile *entity.UserProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("profile.Save"); err != nil {
		return err
	}
	r.s.profiles[profile.UserID] = copyProfile(profile)
	return nil
}

// fakeLocker implements adapter.Locker.
type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	err      error
	released []string
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (adapter.Unlocker, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, false, l.err
	}
	if l.held[key] {
		return nil, false, nil
	}
	l.held[key] = true
	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
		l.released = append(l.released, key)
		return nil
	}, true, nil
}

// engine wires the engine components over one memStore.
type engine struct {
	store       *memStore
	entries     *memEntryRepo
	budgets     *memBudgetRepo
	spendings   *memSpendingRepo
	profiles    *memProfileRepo
	generator   *Generator
	coordinator *Coordinator
	roller      *Roller
}

func newEngine() *engine {
	s := newMemStore()
	e := &engine{
		store:     s,
		entries:   &memEntryRepo{s: s},
		budgets:   &memBudgetRepo{s: s},
		spendings: &memSpendingRepo{s: s},
		profiles:  &memProfileRepo{s: s},
	}
	e.generator = NewGenerator(e.entries)
	e.coordinator = NewCoordinator(e.entries, e.generator)
	e.roller = NewRoller(e.entries, e.budgets, e.spendings)
	return e
}

// seed stores a new entry and returns it.
func (e *engine) seed(
	t *testing.T,
	userID uuid.UUID,
	kind entity.EntryKind,
	date time.Time,
	amount int64,
	repeated entity.RepeatFrequency,
	groupID *uuid.UUID,
) *entity.RecurringEntry {
	t.Helper()
	entry := entity.NewRecurringEntry(userID, kind, "Entry", amount, date, repeated, nil)
	entry.RepeatGroupID = groupID
	if err := e.entries.Create(context.Background(), entry); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return entry
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
