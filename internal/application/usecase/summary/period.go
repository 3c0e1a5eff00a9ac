// Package summary contains monthly, weekly and calendar summary use cases.
package summary

import (
	"time"

	"github.com/sft-api/backend/internal/domain/valueobject"
)

// Week is a half-open [Start, End) range inside one month.
type Week struct {
	Start time.Time
	End   time.Time
}

// LastDay returns the inclusive last day of the week.
func (w Week) LastDay() time.Time {
	return w.End.AddDate(0, 0, -1)
}

// WeeksInMonth splits the month into Monday-start weeks. The first and last
// weeks are clipped to the month's edges.
func WeeksInMonth(month valueobject.MonthRange) []Week {
	var weeks []Week

	current := month.Start
	for current.Before(month.End) {
		next := weekStart(current).AddDate(0, 0, 7)
		if next.After(month.End) {
			next = month.End
		}
		weeks = append(weeks, Week{Start: current, End: next})
		current = next
	}
	return weeks
}

// weekStart returns the Monday on or before date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return valueobject.DateOnly(date).AddDate(0, 0, -(weekday - 1))
}
