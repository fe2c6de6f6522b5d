package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/invoicing/events"
	"encore.app/invoicing/model"
)

// maxOverdueReminders caps how long a collection workflow keeps chasing an
// unpaid invoice before giving up and completing.
const maxOverdueReminders = 8

// CollectionWorkflowParams contains parameters for starting the collection workflow
type CollectionWorkflowParams struct {
	InvoiceID       int32     `json:"invoice_id"`
	OrgID           int64     `json:"org_id"`
	ClientID        int64     `json:"client_id"`
	DueAt           time.Time `json:"due_at"`
	GracePeriodDays int32     `json:"grace_period_days"`
}

// checkpoint is one scheduled wake-up of the collection workflow.
type checkpoint struct {
	at          time.Time
	kind        string
	daysOverdue int
	markOverdue bool
}

// Collection chases a sent invoice until it is settled or voided. It sleeps
// between reminder checkpoints and reacts to payment and void signals in the
// meantime; every checkpoint re-reads the invoice through an activity, so
// missed or duplicated signals never send a reminder for a settled invoice.
func Collection(ctx workflow.Context, params CollectionWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting collection workflow", "invoiceID", params.InvoiceID, "dueAt", params.DueAt)

	paymentCh := workflow.GetSignalChannel(ctx, PaymentRecordedSignalName)
	voidedCh := workflow.GetSignalChannel(ctx, InvoiceVoidedSignalName)

	settled := false
	for _, cp := range collectionCheckpoints(params.DueAt, params.GracePeriodDays) {
		now := workflow.Now(ctx)
		if cp.at.After(now) {
			timer := workflow.NewTimer(ctx, cp.at.Sub(now))
			timerFired := false
			for !timerFired && !settled {
				selector := workflow.NewSelector(ctx)

				selector.AddFuture(timer, func(f workflow.Future) {
					timerFired = true
				})

				selector.AddReceive(paymentCh, func(c workflow.ReceiveChannel, more bool) {
					var signal PaymentRecordedSignal
					c.Receive(ctx, &signal)
					logger.Info("Payment activity on invoice", "invoiceID", params.InvoiceID, "paymentID", signal.PaymentID, "status", signal.Status)
					if signal.Status == string(model.InvoiceStatusPaid) {
						settled = true
					}
				})

				selector.AddReceive(voidedCh, func(c workflow.ReceiveChannel, more bool) {
					var signal InvoiceVoidedSignal
					c.Receive(ctx, &signal)
					logger.Info("Invoice voided, stopping collection", "invoiceID", params.InvoiceID, "reason", signal.Reason)
					settled = true
				})

				selector.Select(ctx)
			}
		}
		if settled {
			break
		}

		if cp.markOverdue {
			if err := markInvoiceOverdue(ctx, params.OrgID, params.InvoiceID); err != nil {
				logger.Error("Failed to mark invoice overdue", "invoiceID", params.InvoiceID, "error", err)
			}
		}

		outstanding, err := sendInvoiceReminder(ctx, params.OrgID, params.InvoiceID, cp.kind, cp.daysOverdue)
		if err != nil {
			logger.Error("Failed to send invoice reminder", "invoiceID", params.InvoiceID, "kind", cp.kind, "error", err)
			continue
		}
		if !outstanding {
			logger.Info("Invoice no longer outstanding", "invoiceID", params.InvoiceID)
			settled = true
			break
		}
	}

	logger.Info("Collection workflow completed", "invoiceID", params.InvoiceID, "settled", settled)
	return nil
}

// collectionCheckpoints lays out the reminder schedule for a due date: one
// reminder on the due day itself, a transition plus reminder on the first day
// past the grace period, then one every seventh overdue day.
func collectionCheckpoints(dueAt time.Time, graceDays int32) []checkpoint {
	graceEnd := dueAt.AddDate(0, 0, int(graceDays))

	cps := []checkpoint{
		{at: dueAt, kind: events.ReminderKindDueToday},
		{at: graceEnd.AddDate(0, 0, 1), kind: events.ReminderKindOverdue, daysOverdue: 1, markOverdue: true},
	}
	for i := 1; i < maxOverdueReminders; i++ {
		days := i * 7
		cps = append(cps, checkpoint{
			at:          graceEnd.AddDate(0, 0, days),
			kind:        events.ReminderKindOverdue,
			daysOverdue: days,
		})
	}
	return cps
}

// markInvoiceOverdue executes the MarkInvoiceOverdue activity
func markInvoiceOverdue(ctx workflow.Context, orgID int64, invoiceID int32) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, MarkInvoiceOverdueActivity, orgID, invoiceID).Get(ctx, nil)
}

// sendInvoiceReminder executes the SendInvoiceReminder activity and reports
// whether the invoice is still outstanding.
func sendInvoiceReminder(ctx workflow.Context, orgID int64, invoiceID int32, kind string, daysOverdue int) (bool, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var outstanding bool
	err := workflow.ExecuteActivity(activityCtx, SendInvoiceReminderActivity, orgID, invoiceID, kind, daysOverdue).Get(ctx, &outstanding)
	return outstanding, err
}
