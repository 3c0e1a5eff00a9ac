package controller

import "time"

// clock supplies the reference time used for month defaults and maintenance.
type clock struct {
	now func() time.Time
}

func systemClock() clock {
	return clock{now: time.Now}
}

// SetClock replaces the time source.
func (c *clock) SetClock(now func() time.Time) {
	if now != nil {
		c.now = now
	}
}
