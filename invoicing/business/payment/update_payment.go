package payment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	invoicebiz "encore.app/invoicing/business/invoice"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/payments"
)

// UpdatePayment applies an administrative correction to an existing ledger
// entry. Ledger entries are otherwise immutable; corrections reconcile the
// invoice in the same transaction so the derived fields never drift.
func (b *business) UpdatePayment(ctx context.Context, in *UpdatePaymentInput) (*model.Payment, *model.ReconciliationOutcome, error) {
	existing, err := b.repo.Payments.GetPayment(ctx, payments.GetPaymentParams{ID: in.PaymentID, OrgID: in.OrgID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, &errs.Error{Code: errs.NotFound, Message: "payment not found"}
		}
		return nil, nil, &errs.Error{Code: errs.Internal, Message: "failed to get payment"}
	}

	var (
		entry   *model.Payment
		outcome *model.ReconciliationOutcome
	)
	err = b.stateMachine.ExecuteWithLock(ctx, in.OrgID, existing.InvoiceID, func(tx domain.Tx, inv invoices.Invoice) error {
		note := pgtype.Text{}
		if in.Note != nil {
			note = pgtype.Text{String: *in.Note, Valid: true}
		}

		updated, err := tx.Payments.UpdatePayment(ctx, payments.UpdatePaymentParams{
			ID:            in.PaymentID,
			OrgID:         in.OrgID,
			AmountCents:   in.AmountCents,
			PaymentMethod: pgtype.Text{String: in.PaymentMethod, Valid: true},
			PaidAt:        pgtype.Timestamptz{Time: in.PaidAt, Valid: true},
			Note:          note,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "payment not found"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to update payment"}
		}

		var reconcileErr error
		outcome, reconcileErr = invoicebiz.ReconcileLocked(ctx, tx, inv, in.PaidAt, time.Now())
		if reconcileErr != nil {
			return reconcileErr
		}

		entry = convertDBPaymentToModel(updated)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return entry, outcome, nil
}
