package invoice

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/payments"
)

// Reconcile is the administrative entry point: recompute under the invoice
// row lock without dispatching anything.
func (b *business) Reconcile(ctx context.Context, orgID int64, id int32, now time.Time) (*model.ReconciliationOutcome, error) {
	var outcome *model.ReconciliationOutcome

	err := b.stateMachine.ExecuteWithLock(ctx, orgID, id, func(tx domain.Tx, inv invoices.Invoice) error {
		var reconcileErr error
		outcome, reconcileErr = ReconcileLocked(ctx, tx, inv, now, now)
		return reconcileErr
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// ReconcileLocked derives total_paid_cents, remaining_balance_cents and
// status for a locked invoice from a fresh ledger aggregate and writes all
// derived fields together. It must be called with the invoice row locked,
// inside the same transaction that performed the triggering mutation, so
// concurrent payments cannot produce a lost update.
//
// triggeredAt becomes paid_at when the invoice reaches paid; now drives the
// sent-vs-overdue re-derivation when a deletion reverts a paid invoice.
//
// Status decision table, in precedence order: void and draft are never
// resurrected; zero paid reverts a previously paid/partial invoice to its
// base unpaid status; a partial sum is always partially_paid; a covering sum
// is paid.
func ReconcileLocked(ctx context.Context, tx domain.Tx, inv invoices.Invoice, triggeredAt, now time.Time) (*model.ReconciliationOutcome, error) {
	totalPaid, err := tx.Payments.SumPaymentsByInvoice(ctx, payments.SumPaymentsByInvoiceParams{
		InvoiceID: inv.ID,
		OrgID:     inv.OrgID,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to sum payment ledger"}
	}

	remaining := inv.AmountCents - totalPaid
	if remaining < 0 {
		remaining = 0
	}

	prev := model.InvoiceStatus(inv.Status)
	next := prev
	paidAt := inv.PaidAt

	switch {
	case prev == model.InvoiceStatusVoid || prev == model.InvoiceStatusDraft:
		// Status unchanged; totals still refresh below.
	case totalPaid == 0:
		if prev == model.InvoiceStatusPaid || prev == model.InvoiceStatusPartiallyPaid {
			next = baseUnpaidStatus(inv, now)
		}
		paidAt = pgtype.Timestamptz{}
	case totalPaid < inv.AmountCents:
		next = model.InvoiceStatusPartiallyPaid
		paidAt = pgtype.Timestamptz{}
	default:
		next = model.InvoiceStatusPaid
		if !paidAt.Valid {
			paidAt = pgtype.Timestamptz{Time: triggeredAt, Valid: true}
		}
	}

	updated, err := tx.Invoices.UpdateInvoiceReconciliation(ctx, invoices.UpdateInvoiceReconciliationParams{
		ID:                    inv.ID,
		OrgID:                 inv.OrgID,
		Status:                string(next),
		TotalPaidCents:        totalPaid,
		RemainingBalanceCents: remaining,
		PaidAt:                paidAt,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to persist reconciliation"}
	}

	if next == model.InvoiceStatusPaid && prev != model.InvoiceStatusPaid {
		// The plan is settled; open installments follow the invoice.
		if err := tx.Installments.MarkOpenInstallmentsPaid(ctx, installments.ByInvoiceParams{
			InvoiceID: inv.ID,
			OrgID:     inv.OrgID,
		}); err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to settle installments"}
		}
	}

	outcome := &model.ReconciliationOutcome{
		InvoiceID:             inv.ID,
		OrgID:                 inv.OrgID,
		ClientID:              inv.ClientID,
		TotalPaidCents:        totalPaid,
		RemainingBalanceCents: remaining,
		Status:                next,
		PreviousStatus:        prev,
		StatusChanged:         next != prev,
	}
	if updated.PaidAt.Valid {
		t := updated.PaidAt.Time
		outcome.PaidAt = &t
	}
	return outcome, nil
}

// baseUnpaidStatus picks the status a fully-reverted invoice returns to:
// overdue when the due date plus grace has already lapsed, otherwise sent.
func baseUnpaidStatus(inv invoices.Invoice, now time.Time) model.InvoiceStatus {
	if inv.DueAt.Valid {
		c := domain.Classify(inv.DueAt.Time, domain.DefaultGracePeriodDays, now, time.UTC)
		if c.Overdue {
			return model.InvoiceStatusOverdue
		}
	}
	return model.InvoiceStatusSent
}
