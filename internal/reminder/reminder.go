package reminder

import (
	"fmt"
	"time"
)

// Unit is the granularity a relative reminder is expressed in.
type Unit int

const (
	Minutes Unit = iota
	Hours
	Days
)

func (u Unit) String() string {
	switch u {
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	default:
		return "unknown"
	}
}

// Reminder is the relative form of a reminder: "Value Units before the
// task's start". It is a view representation only; persisted reminders
// are absolute timestamps.
type Reminder struct {
	Value int64
	Unit  Unit
}

// FromDifference converts an absolute reminder timestamp into its
// relative form. Sub-minute precision is discarded. Whole days win over
// whole hours (1440 minutes reads as 1 day, 120 as 2 hours); anything
// that is neither stays in minutes, so 90 minutes is reported as
// 90 minutes rather than an hour and a half.
func FromDifference(start, at time.Time) Reminder {
	total := int64(start.Sub(at) / time.Minute)
	switch {
	case total < 60:
		return Reminder{Value: total, Unit: Minutes}
	case total%minutesPerDay == 0:
		return Reminder{Value: total / minutesPerDay, Unit: Days}
	case total%60 == 0:
		return Reminder{Value: total / 60, Unit: Hours}
	default:
		return Reminder{Value: total, Unit: Minutes}
	}
}

const minutesPerDay = 24 * 60

// Before returns the absolute instant this reminder fires for a task
// starting at the given time. Day subtraction is calendar-correct, so
// it follows DST transitions rather than always meaning 24 hours.
func (r Reminder) Before(start time.Time) time.Time {
	switch r.Unit {
	case Hours:
		return start.Add(-time.Duration(r.Value) * time.Hour)
	case Days:
		return start.AddDate(0, 0, -int(r.Value))
	default:
		return start.Add(-time.Duration(r.Value) * time.Minute)
	}
}

// String renders the reminder the way the picker shows it, e.g.
// "15 minutes before" or "1 hour before".
func (r Reminder) String() string {
	unit := r.Unit.String()
	if r.Value == 1 {
		unit = unit[:len(unit)-1]
	}
	return fmt.Sprintf("%d %s before", r.Value, unit)
}
