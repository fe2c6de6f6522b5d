package plan

import (
	"time"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
)

// NextOccurrence computes the next schedule date strictly after current.
// Monthly-style frequencies clamp to the last day of the target month when
// the requested day does not exist there (day 31 in February lands on the
// 28th or 29th, never on March 1st).
func NextOccurrence(frequency model.RecurringFrequency, dayOfMonth *int32, current time.Time) (time.Time, error) {
	switch frequency {
	case model.FrequencyWeekly:
		return current.AddDate(0, 0, 7), nil
	case model.FrequencyBiweekly:
		return current.AddDate(0, 0, 14), nil
	case model.FrequencyMonthly:
		day := int(current.Day())
		if dayOfMonth != nil {
			day = int(*dayOfMonth)
		}
		return addMonthsClamped(current, 1, day), nil
	case model.FrequencyQuarterly:
		return addMonthsClamped(current, 3, current.Day()), nil
	case model.FrequencyAnnually:
		return addMonthsClamped(current, 12, current.Day()), nil
	default:
		return time.Time{}, &errs.Error{Code: errs.InvalidArgument, Message: "unknown recurring frequency"}
	}
}

// Advance returns the template's next invoice date after materializing the
// current occurrence. The second return is true when the computed date
// falls past the template's end date, meaning the template should be
// cancelled instead of rescheduled.
func Advance(tpl *model.RecurringTemplate, asOf time.Time) (time.Time, bool, error) {
	next, err := NextOccurrence(tpl.Frequency, tpl.DayOfMonth, tpl.NextInvoiceDate)
	if err != nil {
		return time.Time{}, false, err
	}
	if tpl.EndDate != nil && next.After(*tpl.EndDate) {
		return time.Time{}, true, nil
	}
	return next, false, nil
}

// addMonthsClamped adds months to t and pins the result to day, clamped to
// the length of the target month. time.AddDate alone normalizes overflow
// (Jan 31 + 1 month = Mar 3), which is exactly the behavior to avoid.
func addMonthsClamped(t time.Time, months, day int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
