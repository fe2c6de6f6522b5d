package domain

import (
	"time"
)

// DefaultGracePeriodDays applies when an installment or invoice has no
// explicit grace period.
const DefaultGracePeriodDays = 3

// reminderCadenceDays is the repeat interval for overdue reminders after the
// first one. Every caller (cron sweep, collection workflow) goes through
// ShouldRemind so the thresholds cannot drift between call sites.
const reminderCadenceDays = 7

// Classification is the overdue evaluator's verdict for one due date at one
// point in time.
type Classification struct {
	DueToday    bool
	Overdue     bool
	DaysOverdue int
}

// Classify evaluates a due date against "now" in the organization's
// timezone. The due date is a literal calendar day: its year, month and day
// are taken as stored, while now is converted into the org timezone before
// comparing. Grace is measured in whole calendar days added to the due date:
// an item is overdue only when today is strictly after due+grace, so the
// last grace day itself is still on time.
func Classify(dueDate time.Time, gracePeriodDays int, now time.Time, loc *time.Location) Classification {
	if loc == nil {
		loc = time.UTC
	}

	today := calendarDay(now, loc)
	due := calendarDay(dueDate, time.UTC)
	deadline := due.AddDate(0, 0, gracePeriodDays)

	c := Classification{
		DueToday: today.Equal(due),
		Overdue:  today.After(deadline),
	}
	if c.Overdue {
		c.DaysOverdue = int(today.Sub(deadline) / (24 * time.Hour))
	}
	return c
}

// ShouldRemind implements the reminder cadence: once on the due day, once on
// the first overdue day, then on every 7th day overdue.
func ShouldRemind(c Classification) bool {
	if c.DueToday {
		return true
	}
	if !c.Overdue {
		return false
	}
	return c.DaysOverdue == 1 || c.DaysOverdue%reminderCadenceDays == 0
}

// calendarDay maps t to its calendar day in loc, materialized in UTC so day
// arithmetic is immune to DST transitions.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
