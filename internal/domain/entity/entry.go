// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind identifies which ledger an entry belongs to.
type EntryKind string

const (
	EntryKindIncome      EntryKind = "income"
	EntryKindExpenditure EntryKind = "expenditure"
)

// RepeatFrequency represents how often an entry repeats.
type RepeatFrequency string

const (
	RepeatNever   RepeatFrequency = "NEVER"
	RepeatDaily   RepeatFrequency = "DAILY"
	RepeatWeekly  RepeatFrequency = "WEEKLY"
	RepeatMonthly RepeatFrequency = "MONTHLY"
)

// IsValid reports whether the frequency is one of the known values.
func (f RepeatFrequency) IsValid() bool {
	switch f {
	case RepeatNever, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}

// IsSeries reports whether entries with this frequency are materialized as a series.
// DAILY is accepted on input but never expanded.
func (f RepeatFrequency) IsSeries() bool {
	return f == RepeatWeekly || f == RepeatMonthly
}

// ExpenditureType classifies an expenditure.
type ExpenditureType string

const (
	ExpenditureTypeBill       ExpenditureType = "BILL"
	ExpenditureTypeSaving     ExpenditureType = "SAVING"
	ExpenditureTypeInvestment ExpenditureType = "INVESTMENT"
)

// IsValid reports whether the expenditure type is known.
func (t ExpenditureType) IsValid() bool {
	switch t {
	case ExpenditureTypeBill, ExpenditureTypeSaving, ExpenditureTypeInvestment:
		return true
	}
	return false
}

// RecurringEntry is a single dated income or expenditure occurrence.
// Amount is denominated in minor currency units (e.g. pence).
type RecurringEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Kind          EntryKind
	Title         string
	Amount        int64
	Date          time.Time
	Repeated      RepeatFrequency
	RepeatGroupID *uuid.UUID
	Category      *ExpenditureType // Expenditure only
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRecurringEntry creates a new entry with a fresh ID.
// Expenditures without a category default to BILL.
func NewRecurringEntry(
	userID uuid.UUID,
	kind EntryKind,
	title string,
	amount int64,
	date time.Time,
	repeated RepeatFrequency,
	category *ExpenditureType,
) *RecurringEntry {
	now := time.Now().UTC()

	entry := &RecurringEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Amount:    amount,
		Date:      date.UTC(),
		Repeated:  repeated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if entry.HasCategory() {
		c := ExpenditureTypeBill
		if category != nil {
			c = *category
		}
		entry.Category = &c
	}

	return entry
}

// HasCategory reports whether this kind of entry carries an expenditure type.
func (e *RecurringEntry) HasCategory() bool {
	return e.Kind == EntryKindExpenditure
}

// IsInSeries reports whether the entry belongs to a materialized series.
func (e *RecurringEntry) IsInSeries() bool {
	return e.Repeated.IsSeries() && e.RepeatGroupID != nil
}

// Occurrence returns a copy of the entry dated at date, with a new ID and
// the same owner, title, amount, frequency, category and group.
func (e *RecurringEntry) Occurrence(date time.Time) *RecurringEntry {
	now := time.Now().UTC()

	occ := &RecurringEntry{
		ID:        uuid.New(),
		UserID:    e.UserID,
		Kind:      e.Kind,
		Title:     e.Title,
		Amount:    e.Amount,
		Date:      date,
		Repeated:  e.Repeated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if e.RepeatGroupID != nil {
		g := *e.RepeatGroupID
		occ.RepeatGroupID = &g
	}
	if e.Category != nil {
		c := *e.Category
		occ.Category = &c
	}
	return occ
}

// Snapshot returns a deep copy of the entry.
func (e *RecurringEntry) Snapshot() *RecurringEntry {
	cp := e.Occurrence(e.Date)
	cp.ID = e.ID
	cp.CreatedAt = e.CreatedAt
	cp.UpdatedAt = e.UpdatedAt
	return cp
}

// SeriesFields are the values propagated from an edited occurrence to the
// future occurrences of its series.
type SeriesFields struct {
	Title    string
	Amount   int64
	Repeated RepeatFrequency
	Category *ExpenditureType
}

// SeriesFields returns the propagated fields of the entry.
func (e *RecurringEntry) SeriesFields() SeriesFields {
	return SeriesFields{
		Title:    e.Title,
		Amount:   e.Amount,
		Repeated: e.Repeated,
		Category: e.Category,
	}
}
