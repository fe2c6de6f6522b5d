package payment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	invoicebiz "encore.app/invoicing/business/invoice"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/installments"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/payments"
)

// RecordPayment appends to the invoice's payment ledger under the invoice
// row lock and reconciles the derived fields inside the same transaction.
// A duplicate external reference (webhook redelivery, double import) is
// rejected as a conflict before any state changes.
func (b *business) RecordPayment(ctx context.Context, in *RecordPaymentInput) (*model.Payment, *model.ReconciliationOutcome, error) {
	var (
		entry   *model.Payment
		outcome *model.ReconciliationOutcome
	)

	err := b.stateMachine.ExecuteWithLock(ctx, in.OrgID, in.InvoiceID, func(tx domain.Tx, inv invoices.Invoice) error {
		if !domain.AcceptsPayments(model.InvoiceStatus(inv.Status)) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "invoice is void, cannot record payments"}
		}

		externalRef := pgtype.Text{}
		if in.ExternalReference != nil {
			externalRef = pgtype.Text{String: *in.ExternalReference, Valid: true}
		}
		note := pgtype.Text{}
		if in.Note != nil {
			note = pgtype.Text{String: *in.Note, Valid: true}
		}

		dbPayment, err := tx.Payments.CreatePayment(ctx, payments.CreatePaymentParams{
			InvoiceID:         in.InvoiceID,
			OrgID:             in.OrgID,
			AmountCents:       in.AmountCents,
			PaymentMethod:     pgtype.Text{String: in.PaymentMethod, Valid: true},
			PaidAt:            pgtype.Timestamptz{Time: in.PaidAt, Valid: true},
			ExternalReference: externalRef,
			Note:              note,
		})
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				return &errs.Error{Code: errs.AlreadyExists, Message: "payment with this external reference already recorded"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to record payment"}
		}

		if in.InstallmentID != nil {
			if err := b.settleInstallment(ctx, tx, inv, *in.InstallmentID); err != nil {
				return err
			}
		}

		outcome, err = invoicebiz.ReconcileLocked(ctx, tx, inv, in.PaidAt, time.Now())
		if err != nil {
			return err
		}

		entry = convertDBPaymentToModel(dbPayment)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return entry, outcome, nil
}

// settleInstallment marks an explicitly matched installment as paid after
// checking it belongs to the locked invoice and is still open.
func (b *business) settleInstallment(ctx context.Context, tx domain.Tx, inv invoices.Invoice, installmentID int32) error {
	inst, err := tx.Installments.GetInstallment(ctx, installments.GetInstallmentParams{
		ID:    installmentID,
		OrgID: inv.OrgID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "installment not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to get installment"}
	}

	if inst.InvoiceID != inv.ID {
		return &errs.Error{Code: errs.InvalidArgument, Message: "installment does not belong to this invoice"}
	}
	if model.InstallmentStatus(inst.Status).IsTerminal() {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "installment is already settled"}
	}

	if _, err := tx.Installments.UpdateInstallmentStatus(ctx, installments.UpdateInstallmentStatusParams{
		ID:     installmentID,
		OrgID:  inv.OrgID,
		Status: string(model.InstallmentStatusPaid),
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to mark installment paid"}
	}
	return nil
}

func convertDBPaymentToModel(dbPayment payments.Payment) *model.Payment {
	p := &model.Payment{
		ID:          dbPayment.ID,
		InvoiceID:   dbPayment.InvoiceID,
		OrgID:       dbPayment.OrgID,
		AmountCents: dbPayment.AmountCents,
		PaidAt:      dbPayment.PaidAt.Time,
		CreatedAt:   dbPayment.CreatedAt.Time,
	}

	if dbPayment.PaymentMethod.Valid {
		p.PaymentMethod = dbPayment.PaymentMethod.String
	}

	if dbPayment.ExternalReference.Valid {
		p.ExternalReference = &dbPayment.ExternalReference.String
	}

	if dbPayment.Note.Valid {
		p.Note = &dbPayment.Note.String
	}

	return p
}
