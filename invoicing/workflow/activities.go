package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/invoicing/business/invoice"
	"encore.app/invoicing/events"
	"encore.app/invoicing/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	InvoiceBusiness invoice.Business
	Publisher       events.Publisher
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(invoiceBusiness invoice.Business, publisher events.Publisher) {
	activityDeps = &ActivityDependencies{
		InvoiceBusiness: invoiceBusiness,
		Publisher:       publisher,
	}
}

// MarkInvoiceOverdueActivity transitions a sent invoice to overdue once its
// grace period has lapsed. A no-op when the invoice already left sent.
func MarkInvoiceOverdueActivity(ctx context.Context, orgID int64, invoiceID int32) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing mark invoice overdue activity", "invoiceID", invoiceID)

	if activityDeps == nil || activityDeps.InvoiceBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	transitioned, err := activityDeps.InvoiceBusiness.MarkOverdue(ctx, orgID, invoiceID)
	if err != nil {
		logger.Error("Failed to mark invoice overdue", "invoiceID", invoiceID, "error", err)
		return err
	}

	logger.Info("Mark overdue activity finished", "invoiceID", invoiceID, "transitioned", transitioned)
	return nil
}

// SendInvoiceReminderActivity re-reads the invoice and, when a balance is
// still outstanding, publishes a payment reminder. It returns whether the
// invoice is still outstanding so the workflow can stop on settled or voided
// invoices even when a signal was lost.
func SendInvoiceReminderActivity(ctx context.Context, orgID int64, invoiceID int32, kind string, daysOverdue int) (bool, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing send invoice reminder activity", "invoiceID", invoiceID, "kind", kind)

	if activityDeps == nil || activityDeps.InvoiceBusiness == nil || activityDeps.Publisher == nil {
		logger.Error("Activity dependencies not set")
		return false, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	inv, err := activityDeps.InvoiceBusiness.GetInvoice(ctx, orgID, invoiceID)
	if err != nil {
		logger.Error("Failed to load invoice for reminder", "invoiceID", invoiceID, "error", err)
		return false, err
	}

	switch inv.Status {
	case model.InvoiceStatusPaid, model.InvoiceStatusVoid, model.InvoiceStatusDraft:
		logger.Info("Invoice no longer collectible, skipping reminder", "invoiceID", invoiceID, "status", inv.Status)
		return false, nil
	}

	ev := &events.PaymentReminder{
		OrgID:       orgID,
		InvoiceID:   invoiceID,
		ClientID:    inv.ClientID,
		Kind:        kind,
		DaysOverdue: daysOverdue,
		AmountCents: inv.RemainingBalanceCents,
		DueDate:     inv.DueAt,
		OccurredAt:  activity.GetInfo(ctx).StartedTime,
	}
	if err := activityDeps.Publisher.PublishReminder(ctx, ev); err != nil {
		logger.Error("Failed to publish invoice reminder", "invoiceID", invoiceID, "error", err)
		return true, err
	}

	logger.Info("Successfully published invoice reminder", "invoiceID", invoiceID, "kind", kind)
	return true, nil
}
