// Package valueobject contains domain value objects for the finance tracker.
package valueobject

import (
	"time"

	"github.com/jinzhu/now"
)

const (
	// MonthParamLayout is the layout of the ?month= query parameter.
	MonthParamLayout = "2006-01"

	// ForwardMonths is how many months past the current one are materialized.
	ForwardMonths = 5

	// RetentionMonths is how many months before the current one are kept.
	RetentionMonths = 6
)

// MonthRange is a half-open time range [Start, End) covering one calendar month.
type MonthRange struct {
	Start time.Time
	End   time.Time
}

// MonthOf returns the month range containing t, in UTC.
func MonthOf(t time.Time) MonthRange {
	start := MonthStart(t)
	return MonthRange{Start: start, End: start.AddDate(0, 1, 0)}
}

// Contains reports whether t falls inside the range.
func (r MonthRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Shift returns the month range n months away.
func (r MonthRange) Shift(n int) MonthRange {
	start := r.Start.AddDate(0, n, 0)
	return MonthRange{Start: start, End: start.AddDate(0, 1, 0)}
}

// LastDay returns midnight of the last calendar day of the range.
func (r MonthRange) LastDay() time.Time {
	return r.End.AddDate(0, 0, -1)
}

// MonthStart returns midnight UTC of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return now.With(t.UTC()).BeginningOfMonth()
}

// DateOnly strips the time of day from t.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DateOnly(a.UTC()).Equal(DateOnly(b.UTC()))
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamped moves t forward n months keeping its day of month, clamped
// to the length of the target month. Time of day is preserved.
//
// Jan 31 + 1 = Feb 28 (or 29), Jan 31 + 2 = Mar 31.
func AddMonthsClamped(t time.Time, n int) time.Time {
	target := now.With(t).BeginningOfMonth().AddDate(0, n, 0)

	day := t.Day()
	if last := DaysIn(target.Year(), target.Month()); day > last {
		day = last
	}

	return time.Date(
		target.Year(), target.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		t.Location(),
	)
}

// FinalVisibleDay returns the last calendar day of the month ForwardMonths
// after t's month.
func FinalVisibleDay(t time.Time) time.Time {
	return MonthOf(t).Shift(ForwardMonths).LastDay()
}

// FifthMonth returns the month four months after current.
func FifthMonth(current time.Time) MonthRange {
	return MonthOf(current).Shift(ForwardMonths - 1)
}

// SixthMonth returns the month five months after current, the forward edge
// of the visibility window.
func SixthMonth(current time.Time) MonthRange {
	return MonthOf(current).Shift(ForwardMonths)
}

// RetentionCutoff returns the first instant that is still retained. Anything
// dated strictly before it is eligible for pruning.
func RetentionCutoff(current time.Time) time.Time {
	return MonthStart(current).AddDate(0, -RetentionMonths, 0)
}

// ResolveMonth parses a YYYY-MM parameter. Missing or malformed values fall
// back to the month containing ref.
func ResolveMonth(param string, ref time.Time) MonthRange {
	if param != "" {
		if t, err := time.ParseInLocation(MonthParamLayout, param, time.UTC); err == nil {
			return MonthOf(t)
		}
	}
	return MonthOf(ref)
}
