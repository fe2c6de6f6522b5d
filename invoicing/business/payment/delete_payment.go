package payment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	invoicebiz "encore.app/invoicing/business/invoice"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/payments"
)

// DeletePayment removes a ledger entry and reconciles the owning invoice as
// if the entry never existed, all under the invoice row lock. A paid
// invoice whose covering entry is deleted reverts to partially_paid or its
// base unpaid status, and paid_at is cleared.
func (b *business) DeletePayment(ctx context.Context, orgID int64, paymentID int32) (*model.ReconciliationOutcome, error) {
	existing, err := b.repo.Payments.GetPayment(ctx, payments.GetPaymentParams{ID: paymentID, OrgID: orgID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "payment not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get payment"}
	}

	var outcome *model.ReconciliationOutcome
	err = b.stateMachine.ExecuteWithLock(ctx, orgID, existing.InvoiceID, func(tx domain.Tx, inv invoices.Invoice) error {
		if _, err := tx.Payments.DeletePayment(ctx, payments.DeletePaymentParams{ID: paymentID, OrgID: orgID}); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "payment not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to delete payment"}
		}

		now := time.Now()
		var reconcileErr error
		outcome, reconcileErr = invoicebiz.ReconcileLocked(ctx, tx, inv, now, now)
		return reconcileErr
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}
