// Package notification consumes invoicing events and turns them into
// client-facing messages. Delivery is decoupled from the invoicing write
// path: events arrive at least once, and every handler is safe to retry.
package notification

import (
	"context"
	"fmt"

	"encore.dev/pubsub"
	"encore.dev/rlog"

	"encore.app/invoicing/events"
)

var _ = pubsub.NewSubscription(events.PaymentReminderTopic, "send-payment-reminder",
	pubsub.SubscriptionConfig[*events.PaymentReminder]{
		Handler: HandlePaymentReminder,
	},
)

var _ = pubsub.NewSubscription(events.InvoiceStatusChangedTopic, "notify-status-changed",
	pubsub.SubscriptionConfig[*events.InvoiceStatusChanged]{
		Handler: HandleInvoiceStatusChanged,
	},
)

// HandlePaymentReminder renders and dispatches a due-today or overdue
// reminder for an invoice or installment.
func HandlePaymentReminder(ctx context.Context, ev *events.PaymentReminder) error {
	msg := reminderMessage(ev)

	if err := dispatch(ctx, ev.OrgID, ev.ClientID, msg); err != nil {
		rlog.Error("failed to dispatch payment reminder", "invoice_id", ev.InvoiceID, "error", err)
		return err
	}

	rlog.Info("payment reminder dispatched",
		"org_id", ev.OrgID,
		"invoice_id", ev.InvoiceID,
		"installment_id", ev.InstallmentID,
		"kind", ev.Kind,
		"days_overdue", ev.DaysOverdue)
	return nil
}

// HandleInvoiceStatusChanged notifies the client when an invoice settles or
// slips into arrears. Intermediate transitions are logged but not sent.
func HandleInvoiceStatusChanged(ctx context.Context, ev *events.InvoiceStatusChanged) error {
	msg, notify := statusMessage(ev)
	if !notify {
		rlog.Debug("status change not client-facing, skipping",
			"invoice_id", ev.InvoiceID, "from", ev.PreviousStatus, "to", ev.NewStatus)
		return nil
	}

	if err := dispatch(ctx, ev.OrgID, ev.ClientID, msg); err != nil {
		rlog.Error("failed to dispatch status notification", "invoice_id", ev.InvoiceID, "error", err)
		return err
	}

	rlog.Info("status notification dispatched",
		"org_id", ev.OrgID,
		"invoice_id", ev.InvoiceID,
		"from", ev.PreviousStatus,
		"to", ev.NewStatus)
	return nil
}

func reminderMessage(ev *events.PaymentReminder) string {
	amount := formatCents(ev.AmountCents)
	switch ev.Kind {
	case events.ReminderKindDueToday:
		return fmt.Sprintf("A payment of %s is due today.", amount)
	case events.ReminderKindOverdue:
		return fmt.Sprintf("A payment of %s is %d day(s) overdue.", amount, ev.DaysOverdue)
	default:
		return fmt.Sprintf("A payment of %s is outstanding.", amount)
	}
}

func statusMessage(ev *events.InvoiceStatusChanged) (string, bool) {
	switch ev.NewStatus {
	case "paid":
		return "Your invoice has been paid in full. Thank you!", true
	case "partially_paid":
		return fmt.Sprintf("We received a payment. Remaining balance: %s.", formatCents(ev.RemainingBalanceCents)), true
	case "overdue":
		return fmt.Sprintf("Your invoice is overdue. Outstanding balance: %s.", formatCents(ev.RemainingBalanceCents)), true
	default:
		return "", false
	}
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
