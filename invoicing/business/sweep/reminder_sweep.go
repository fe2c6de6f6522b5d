package sweep

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/events"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
)

// RunReminderSweep walks every open installment whose due date has arrived
// (with one day of slack for timezones ahead of UTC) and applies the shared
// overdue policy. Each installment is an independent, idempotent unit of
// work: a failure is logged and skipped so one bad row never stalls the
// sweep, and re-running on the same day is a no-op thanks to the
// last_reminder_sent_on guard.
func (b *business) RunReminderSweep(ctx context.Context, now time.Time) (*ReminderSweepResult, error) {
	horizon := pgtype.Date{Time: now.UTC().AddDate(0, 0, 1), Valid: true}
	rows, err := b.repo.Installments.ListDueInstallments(ctx, horizon)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list due installments"}
	}

	result := &ReminderSweepResult{}
	locations := map[int64]*time.Location{}

	for _, row := range rows {
		if err := b.sweepInstallment(ctx, row, now, locations, result); err != nil {
			rlog.Error("reminder sweep unit failed", "error", err,
				"installment_id", row.Installment.ID, "invoice_id", row.Installment.InvoiceID)
			result.Skipped++
		}
	}

	return result, nil
}

func (b *business) sweepInstallment(ctx context.Context, row installments.ListDueInstallmentsRow, now time.Time, locations map[int64]*time.Location, result *ReminderSweepResult) error {
	inst := row.Installment
	loc := b.orgLocation(ctx, inst.OrgID, locations)

	cls := domain.Classify(inst.DueDate.Time, int(inst.GracePeriodDays), now, loc)

	if cls.Overdue && inst.Status == string(model.InstallmentStatusPending) {
		if _, err := b.repo.Installments.UpdateInstallmentStatus(ctx, installments.UpdateInstallmentStatusParams{
			ID:     inst.ID,
			OrgID:  inst.OrgID,
			Status: string(model.InstallmentStatusOverdue),
		}); err != nil {
			return err
		}
		result.OverdueTransitions++
	}

	if !domain.ShouldRemind(cls) {
		return nil
	}
	if remindedToday(inst.LastReminderSentOn, now, loc) {
		return nil
	}

	kind := events.ReminderKindDueToday
	if cls.Overdue {
		kind = events.ReminderKindOverdue
	}

	dueDate := inst.DueDate.Time
	installmentID := inst.ID
	ev := &events.PaymentReminder{
		OrgID:         inst.OrgID,
		InvoiceID:     inst.InvoiceID,
		ClientID:      row.ClientID,
		InstallmentID: &installmentID,
		Kind:          kind,
		DaysOverdue:   cls.DaysOverdue,
		AmountCents:   inst.AmountCents,
		DueDate:       &dueDate,
		OccurredAt:    now,
	}
	if err := b.publisher.PublishReminder(ctx, ev); err != nil {
		// Notification is best effort; the sent-on marker is not written
		// so tomorrow's sweep retries.
		rlog.Error("failed to publish payment reminder", "error", err, "installment_id", inst.ID)
		return nil
	}

	if err := b.repo.Installments.SetLastReminderSentOn(ctx, installments.SetLastReminderSentOnParams{
		ID:     inst.ID,
		OrgID:  inst.OrgID,
		SentOn: pgtype.Date{Time: localDay(now, loc), Valid: true},
	}); err != nil {
		return err
	}

	if kind == events.ReminderKindDueToday {
		result.DueTodayReminders++
	} else {
		result.OverdueReminders++
	}
	return nil
}

func (b *business) orgLocation(ctx context.Context, orgID int64, cache map[int64]*time.Location) *time.Location {
	if loc, ok := cache[orgID]; ok {
		return loc
	}

	loc := time.UTC
	org, err := b.repo.Organizations.GetOrganization(ctx, orgID)
	if err == nil && org.Timezone.Valid && org.Timezone.String != "" {
		if parsed, err := time.LoadLocation(org.Timezone.String); err == nil {
			loc = parsed
		} else {
			rlog.Warn("invalid organization timezone, falling back to UTC", "org_id", orgID, "timezone", org.Timezone.String)
		}
	}

	cache[orgID] = loc
	return loc
}

func remindedToday(lastSentOn pgtype.Date, now time.Time, loc *time.Location) bool {
	if !lastSentOn.Valid {
		return false
	}
	return localDay(lastSentOn.Time, time.UTC).Equal(localDay(now, loc))
}

func localDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
